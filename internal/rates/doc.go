// Package rates fetches exchange-rate tables from an ExchangeRate-API style
// endpoint (GET {base_url}/v6/{api_key}/latest/{BASE}).
//
// A fetch is a single shot with no retry. Failures are classified so the
// currency screen can show "API Error" when the service answered with a
// non-success result and "Network Error" for everything else.
package rates
