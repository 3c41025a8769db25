package synnexdomain

import (
	"errors"
	"fmt"
	"time"
)

type Environment string

const (
	EnvironmentSandbox    Environment = "sandbox"
	EnvironmentProduction Environment = "production"
)

type CountryCode string

const (
	CountryUS CountryCode = "US"
	CountryCA CountryCode = "CA"
)

// APIFamily separa os endpoints XML padrão do serviço de faturas, que tem host próprio.
type APIFamily string

const (
	APIFamilyDefault APIFamily = "default"
	APIFamilyInvoice APIFamily = "invoice"
)

var (
	ErrInvalidEnvironment = errors.New("invalid synnex environment")
	ErrInvalidCountry     = errors.New("invalid synnex country")
	ErrMissingCredentials = errors.New("missing synnex credentials")
)

type Credential struct {
	UserID   string
	Password string
}

// ClientConfig é capturada na construção do cliente e nunca alterada depois.
type ClientConfig struct {
	Environment   Environment
	Country       CountryCode
	Username      string
	Password      string
	AccountNumber string
	AccountName   string
	Timeout       time.Duration
}

func (c ClientConfig) Credential() Credential {
	return Credential{UserID: c.Username, Password: c.Password}
}

func (c ClientConfig) Validate() error {
	switch c.Environment {
	case EnvironmentSandbox, EnvironmentProduction:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidEnvironment, c.Environment)
	}

	switch c.Country {
	case CountryUS, CountryCA:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidCountry, c.Country)
	}

	if c.Username == "" || c.Password == "" {
		return ErrMissingCredentials
	}

	return nil
}
