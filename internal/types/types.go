// README: Common value types used across modules.
package types

// ID identifies an itinerary (uuid string).
type ID string

// Rupees is an amount in whole Indian rupees. Costs in this system are
// coarse estimates scraped from model text; fractional paise never appear.
type Rupees int
