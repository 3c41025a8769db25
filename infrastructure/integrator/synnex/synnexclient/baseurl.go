package synnexclient

import (
	"fmt"

	synnexdomain "github.com/vfg2006/synnex-gateway/infrastructure/integrator/synnex/domain"
)

const (
	pathPurchaseOrder     = "/SynnexXML/PO"
	pathPriceAvailability = "/SynnexXML/PriceAvailability"
	pathFreightQuote      = "/SynnexXML/FreightQuote"
)

type origin struct {
	env     synnexdomain.Environment
	country synnexdomain.CountryCode
	family  synnexdomain.APIFamily
}

var origins = map[origin]string{
	{synnexdomain.EnvironmentSandbox, synnexdomain.CountryUS, synnexdomain.APIFamilyDefault}:    "https://testec.us.tdsynnex.com",
	{synnexdomain.EnvironmentSandbox, synnexdomain.CountryCA, synnexdomain.APIFamilyDefault}:    "https://testec.ca.tdsynnex.com",
	{synnexdomain.EnvironmentSandbox, synnexdomain.CountryUS, synnexdomain.APIFamilyInvoice}:    "https://testws.us.tdsynnex.com/webservice/invoice/query",
	{synnexdomain.EnvironmentSandbox, synnexdomain.CountryCA, synnexdomain.APIFamilyInvoice}:    "https://testws.ca.tdsynnex.com/webservice/invoice/query",
	{synnexdomain.EnvironmentProduction, synnexdomain.CountryUS, synnexdomain.APIFamilyDefault}: "https://ec.us.tdsynnex.com",
	{synnexdomain.EnvironmentProduction, synnexdomain.CountryCA, synnexdomain.APIFamilyDefault}: "https://ec.ca.tdsynnex.com",
	{synnexdomain.EnvironmentProduction, synnexdomain.CountryUS, synnexdomain.APIFamilyInvoice}: "https://ws.us.tdsynnex.com/webservice/invoice/query",
	{synnexdomain.EnvironmentProduction, synnexdomain.CountryCA, synnexdomain.APIFamilyInvoice}: "https://ws.ca.tdsynnex.com/webservice/invoice/query",
}

// BaseURL resolve a origem do distribuidor para ambiente, país e família de API.
func BaseURL(env synnexdomain.Environment, country synnexdomain.CountryCode, family synnexdomain.APIFamily) (string, error) {
	url, ok := origins[origin{env: env, country: country, family: family}]
	if !ok {
		return "", fmt.Errorf("no synnex endpoint for environment=%q country=%q family=%q", env, country, family)
	}
	return url, nil
}
