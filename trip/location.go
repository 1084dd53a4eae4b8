package trip

import (
	"context"

	"github.com/adisuri/weekendwings/log"
	"github.com/adisuri/weekendwings/providers/ipapi"
)

// IPLocator geolocates an IP address; an empty address means the caller's own
type IPLocator interface {
	Lookup(ctx context.Context, ip string) (*ipapi.GeoResponse, error)
}

// Resolver determines the caller's location from their public IP address
type Resolver struct {
	Locator IPLocator
}

var _ LocationResolver = (*Resolver)(nil)

// Resolve looks up the caller's city and region. Any failure, including a
// "fail" status in the payload, yields an unresolved Location; it never
// returns an error.
func (r *Resolver) Resolve(ctx context.Context) Location {
	geo, err := r.Locator.Lookup(ctx, "")
	if err != nil {
		log.Warnf(ctx, "location resolution failed: %v", err)
		return Location{}
	}
	if geo.Status == "fail" {
		log.Warnf(ctx, "geolocation service reported failure")
		return Location{}
	}
	return Location{City: geo.City, Region: geo.RegionName}
}
