package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"barbershop/internal/domain"
	"barbershop/pkg/validator"
)

// SeedFile is the root of the optional seed YAML.
type SeedFile struct {
	Admin      *AdminSeed        `yaml:"admin,omitempty"`
	Languages  []LanguageSeed    `yaml:"languages"`
	Currencies []CurrencySeed    `yaml:"currencies"`
	SiteConfig map[string]string `yaml:"site_config"`
	Services   []ServiceSeed     `yaml:"services"`
}

type AdminSeed struct {
	Username string `yaml:"username"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

type LanguageSeed struct {
	Code    string `yaml:"code"`
	Name    string `yaml:"name"`
	Default bool   `yaml:"default"`
}

type CurrencySeed struct {
	Code      string  `yaml:"code"`
	Name      string  `yaml:"name"`
	Symbol    string  `yaml:"symbol"`
	RateToUSD float64 `yaml:"exchange_rate_to_usd"`
	Inactive  bool    `yaml:"inactive,omitempty"`
}

type ServiceSeed struct {
	Name            map[string]string  `yaml:"name"`
	Description     map[string]string  `yaml:"description"`
	Prices          map[string]float64 `yaml:"prices"`
	DurationMinutes int                `yaml:"duration_minutes"`
	Popular         bool               `yaml:"popular"`
	SortOrder       int                `yaml:"sort_order"`
}

// LoadSeed reads and validates a seed file.
func LoadSeed(path string) (*SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("leer archivo de datos iniciales: %w", err)
	}

	var seed SeedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("analizar archivo de datos iniciales: %w", err)
	}

	seed.normalize()

	if err := seed.Validate(); err != nil {
		return nil, fmt.Errorf("validar archivo de datos iniciales: %w", err)
	}

	return &seed, nil
}

func (s *SeedFile) normalize() {
	for i := range s.Languages {
		s.Languages[i].Code = strings.ToLower(strings.TrimSpace(s.Languages[i].Code))
	}
	for i := range s.Currencies {
		s.Currencies[i].Code = strings.ToUpper(strings.TrimSpace(s.Currencies[i].Code))
	}
	for i := range s.Services {
		prices := make(map[string]float64, len(s.Services[i].Prices))
		for code, amount := range s.Services[i].Prices {
			prices[strings.ToUpper(code)] = amount
		}
		s.Services[i].Prices = prices
	}
}

// Validate checks the seed for errors.
func (s *SeedFile) Validate() error {
	if s.Admin != nil {
		if len(s.Admin.Username) < 3 {
			return fmt.Errorf("admin.username: mínimo 3 caracteres")
		}
		if !validator.ValidateEmail(s.Admin.Email) {
			return fmt.Errorf("admin.email inválido: %q", s.Admin.Email)
		}
		if len(s.Admin.Password) < 8 {
			return fmt.Errorf("admin.password: mínimo 8 caracteres")
		}
	}

	defaults := 0
	for _, l := range s.Languages {
		if l.Code == "" || l.Name == "" {
			return fmt.Errorf("languages: código y nombre son obligatorios")
		}
		if l.Default {
			defaults++
		}
	}
	if defaults > 1 {
		return fmt.Errorf("languages: solo un idioma puede ser el predeterminado")
	}

	for _, c := range s.Currencies {
		if len(c.Code) != 3 {
			return fmt.Errorf("currencies: código inválido %q", c.Code)
		}
		if c.RateToUSD <= 0 {
			return fmt.Errorf("currencies: %s necesita exchange_rate_to_usd positivo", c.Code)
		}
	}

	for i, svc := range s.Services {
		if len(svc.Name) == 0 {
			return fmt.Errorf("services[%d]: el nombre es obligatorio", i)
		}
		if len(svc.Prices) == 0 {
			return fmt.Errorf("services[%d]: se requiere al menos un precio", i)
		}
		if svc.DurationMinutes < 5 || svc.DurationMinutes > 480 {
			return fmt.Errorf("services[%d]: duration_minutes fuera de rango", i)
		}
	}

	return nil
}

func (l LanguageSeed) toDomain() domain.Language {
	return domain.Language{Code: l.Code, Name: l.Name, IsDefault: l.Default, Active: true}
}

func (c CurrencySeed) toDomain() domain.Currency {
	return domain.Currency{
		Code:              c.Code,
		Name:              c.Name,
		Symbol:            c.Symbol,
		ExchangeRateToUSD: c.RateToUSD,
		Active:            !c.Inactive,
	}
}

func (s ServiceSeed) toDTO() domain.CreateServiceDTO {
	return domain.CreateServiceDTO{
		Name:            domain.LocalizedText(s.Name),
		Description:     domain.LocalizedText(s.Description),
		Prices:          domain.Prices(s.Prices),
		DurationMinutes: s.DurationMinutes,
		IsPopular:       s.Popular,
		SortOrder:       s.SortOrder,
	}
}
