package stylist

import (
	"context"
	"slices"
	"strings"

	"therewecome/models"

	"go.uber.org/zap"
)

// Profile fetches the stylist's profile. Missing lists come back empty.
func (d *Dashboard) Profile(ctx context.Context) (*models.Profile, error) {
	p, err := d.api.GetProfile(ctx, d.token)
	if err != nil {
		d.logger.Error("Error fetching profile", zap.Error(err))
		return nil, dashboardError(msgProfileFailed, err)
	}
	if p.Locations == nil {
		p.Locations = []string{}
	}
	if p.Services == nil {
		p.Services = []string{}
	}
	return p, nil
}

func (d *Dashboard) UpdateProfile(ctx context.Context, p models.Profile) error {
	if err := d.api.UpdateProfile(ctx, d.token, p.Update()); err != nil {
		d.logger.Error("Error updating profile", zap.Error(err))
		return dashboardError(msgProfileNotSaved, err)
	}
	return nil
}

// EditProfile loads the profile, applies edit and saves the result.
func (d *Dashboard) EditProfile(ctx context.Context, edit func(p *models.Profile)) (*models.Profile, error) {
	p, err := d.Profile(ctx)
	if err != nil {
		return nil, err
	}
	edit(p)
	if err := d.UpdateProfile(ctx, *p); err != nil {
		return nil, err
	}
	return p, nil
}

func AddLocation(p *models.Profile, location string) bool {
	return addUnique(&p.Locations, location)
}

func RemoveLocation(p *models.Profile, location string) {
	p.Locations = remove(p.Locations, location)
}

func AddService(p *models.Profile, service string) bool {
	return addUnique(&p.Services, service)
}

func RemoveService(p *models.Profile, service string) {
	p.Services = remove(p.Services, service)
}

// addUnique appends v unless it is blank or already present.
func addUnique(list *[]string, v string) bool {
	if strings.TrimSpace(v) == "" || slices.Contains(*list, v) {
		return false
	}
	*list = append(*list, v)
	return true
}

func remove(list []string, v string) []string {
	out := list[:0:0]
	for _, item := range list {
		if item != v {
			out = append(out, item)
		}
	}
	return out
}
