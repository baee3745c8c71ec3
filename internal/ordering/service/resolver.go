package service

import (
	"context"

	"shieldbox/internal/ordering/models"
	dErrors "shieldbox/pkg/domainerrors"
)

// NearestCaterer reports which catering company is currently closest to
// origin, without placing anything.
func (s *Service) NearestCaterer(ctx context.Context, origin string) (models.CateringCompany, error) {
	return s.nearestCaterer(ctx, origin)
}

// nearestCaterer resolves the catering company closest to origin.
//
// Candidates are scanned in the order the authority lists them; negative or
// unobtainable distances mark a candidate unusable and skip it. The first
// candidate achieving the current strict minimum wins, so ties break by
// input order. Resolution runs fresh on every placement because caterer and
// distance data may change between orders, so nothing is cached.
func (s *Service) nearestCaterer(ctx context.Context, origin string) (models.CateringCompany, error) {
	companies, err := s.gateway.Caterers(ctx)
	if err != nil {
		return models.CateringCompany{}, err
	}

	var (
		nearest models.CateringCompany
		minDist float64
		found   bool
	)
	for _, company := range companies {
		dist, err := s.gateway.Distance(ctx, origin, company.Postcode)
		if err != nil {
			s.logger.Warn("distance lookup failed, skipping caterer",
				"company", company.Name, "error", err)
			continue
		}
		if dist < 0 {
			continue
		}
		if !found || dist < minDist {
			nearest = company
			minDist = dist
			found = true
		}
	}
	if !found {
		return models.CateringCompany{}, dErrors.New(dErrors.CodeNotFound, "no reachable catering company")
	}
	return nearest, nil
}
