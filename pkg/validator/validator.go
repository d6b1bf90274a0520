package validator

import (
	"reflect"
	"regexp"
	"strings"
	"time"
	"unicode"

	playground "github.com/go-playground/validator/v10"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
	dateRegex  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	clockRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
	slugRegex  = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
)

func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidatePhone accepts international numbers; spaces, dashes and
// parentheses are ignored.
func ValidatePhone(phone string) bool {
	return phoneRegex.MatchString(cleanPhone(phone))
}

// ValidateDate accepts a real calendar date in YYYY-MM-DD form.
func ValidateDate(date string) bool {
	if !dateRegex.MatchString(date) {
		return false
	}
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}

// ValidateClock accepts a 24h "HH:MM" time.
func ValidateClock(clock string) bool {
	return clockRegex.MatchString(clock)
}

func ValidateSlug(slug string) bool {
	return slugRegex.MatchString(slug)
}

func FormatPhone(phone string) string {
	return cleanPhone(phone)
}

func cleanPhone(phone string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) || r == '+' {
			return r
		}
		return -1
	}, phone)
}

var accentReplacer = strings.NewReplacer(
	"á", "a", "à", "a", "ã", "a", "â", "a", "ä", "a",
	"é", "e", "ê", "e", "è", "e", "ë", "e",
	"í", "i", "ì", "i", "ï", "i", "î", "i",
	"ó", "o", "ò", "o", "õ", "o", "ô", "o", "ö", "o",
	"ú", "u", "ù", "u", "ü", "u", "û", "u",
	"ç", "c", "ñ", "n",
)

// Slugify turns a title into a URL slug: "Cuidado de la Barba" becomes
// "cuidado-de-la-barba".
func Slugify(s string) string {
	s = accentReplacer.Replace(strings.ToLower(strings.TrimSpace(s)))

	var b strings.Builder
	dash := false
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}

func FormatName(name string) string {
	parts := strings.Fields(name)
	for i, part := range parts {
		runes := []rune(strings.ToLower(part))
		if len(runes) > 0 {
			runes[0] = unicode.ToUpper(runes[0])
		}
		parts[i] = string(runes)
	}
	return strings.Join(parts, " ")
}

func SanitizeString(s string) string {
	return strings.TrimSpace(strings.Map(func(r rune) rune {
		if r == '<' || r == '>' || r == '`' {
			return -1
		}
		return r
	}, s))
}

// Options lists the codes accepted by the "langs" and "currencies" tags.
type Options struct {
	Languages  []string
	Currencies []string
}

// Register installs the custom binding tags used by request DTOs:
//
//	clock       "HH:MM"
//	isodate     "YYYY-MM-DD"
//	phone       international phone number
//	slug        lowercase URL slug
//	langs       map keyed by a supported language code
//	currencies  map keyed by a supported currency code, non-negative amounts
func Register(v *playground.Validate, opts Options) error {
	languages := toSet(opts.Languages, strings.ToLower)
	currencies := toSet(opts.Currencies, strings.ToUpper)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	validations := map[string]playground.Func{
		"clock": func(fl playground.FieldLevel) bool {
			return ValidateClock(fl.Field().String())
		},
		"isodate": func(fl playground.FieldLevel) bool {
			return ValidateDate(fl.Field().String())
		},
		"phone": func(fl playground.FieldLevel) bool {
			return ValidatePhone(fl.Field().String())
		},
		"slug": func(fl playground.FieldLevel) bool {
			return ValidateSlug(fl.Field().String())
		},
		"langs": func(fl playground.FieldLevel) bool {
			return validMapKeys(fl.Field(), languages, func(val reflect.Value) bool {
				return val.Kind() == reflect.String
			})
		},
		"currencies": func(fl playground.FieldLevel) bool {
			return validMapKeys(fl.Field(), currencies, func(val reflect.Value) bool {
				return val.Kind() == reflect.Float64 && val.Float() >= 0
			})
		},
	}

	for tag, fn := range validations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}

	return nil
}

func validMapKeys(field reflect.Value, allowed map[string]struct{}, validValue func(reflect.Value) bool) bool {
	if field.Kind() != reflect.Map {
		return false
	}

	iter := field.MapRange()
	for iter.Next() {
		if iter.Key().Kind() != reflect.String {
			return false
		}
		if _, ok := allowed[iter.Key().String()]; !ok {
			return false
		}
		if !validValue(iter.Value()) {
			return false
		}
	}

	return true
}

func toSet(values []string, normalize func(string) string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[normalize(strings.TrimSpace(v))] = struct{}{}
	}
	return set
}
