// Package convert holds the unit catalogs and conversion laws used by the
// converter screens.
//
// Speed pivots through meters per second and temperature through Kelvin, so
// every pairing within a domain is one trip to the base unit and one trip
// back. Currency conversion is a multiplication by a rate fetched with the
// source currency as base.
package convert
