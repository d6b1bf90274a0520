package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSeed(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadSeed(t *testing.T) {
	path := writeSeed(t, `
admin:
  username: admin
  email: admin@barbershop.local
  password: cambiar-esta-clave
languages:
  - code: " ES "
    name: Español
    default: true
  - code: pt
    name: Português
currencies:
  - code: brl
    name: Real
    symbol: R$
    exchange_rate_to_usd: 5.2
site_config:
  site_email: reservas@barbershop.local
services:
  - name: {es: Corte, pt: Corte}
    prices: {usd: 15, brl: 75}
    duration_minutes: 30
    popular: true
`)

	seed, err := LoadSeed(path)
	require.NoError(t, err)

	require.NotNil(t, seed.Admin)
	assert.Equal(t, "admin", seed.Admin.Username)

	require.Len(t, seed.Languages, 2)
	lang := seed.Languages[0].toDomain()
	assert.Equal(t, "es", lang.Code)
	assert.True(t, lang.IsDefault)
	assert.True(t, lang.Active)

	cur := seed.Currencies[0].toDomain()
	assert.Equal(t, "BRL", cur.Code)
	assert.InDelta(t, 5.2, cur.ExchangeRateToUSD, 1e-9)
	assert.True(t, cur.Active)

	assert.Equal(t, "reservas@barbershop.local", seed.SiteConfig["site_email"])

	dto := seed.Services[0].toDTO()
	assert.Equal(t, 75.0, dto.Prices["BRL"])
	assert.Equal(t, "Corte", dto.Name["es"])
	assert.True(t, dto.IsPopular)
	assert.Equal(t, 30, dto.DurationMinutes)
}

func TestLoadSeedErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "short password",
			body: "admin: {username: admin, email: a@b.co, password: corta}",
		},
		{
			name: "bad email",
			body: "admin: {username: admin, email: nope, password: cambiar-esta-clave}",
		},
		{
			name: "two default languages",
			body: "languages: [{code: es, name: Español, default: true}, {code: pt, name: Português, default: true}]",
		},
		{
			name: "non positive rate",
			body: "currencies: [{code: USD, name: Dólar, exchange_rate_to_usd: 0}]",
		},
		{
			name: "service without prices",
			body: "services: [{name: {es: Corte}, duration_minutes: 30}]",
		},
		{
			name: "duration out of range",
			body: "services: [{name: {es: Corte}, prices: {USD: 1}, duration_minutes: 600}]",
		},
		{
			name: "malformed yaml",
			body: "languages: [",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSeed(writeSeed(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoadSeedMissingFile(t *testing.T) {
	_, err := LoadSeed(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadSeedExample(t *testing.T) {
	seed, err := LoadSeed(filepath.Join("..", "..", "configs", "seed.example.yaml"))
	require.NoError(t, err)
	assert.Len(t, seed.Currencies, 3)
	assert.Len(t, seed.Services, 2)
}
