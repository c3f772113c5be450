package transactions

import (
	"context"

	"txview.app/transactions/model"
)

const searchPlaceholder = "Cari nama, bank, atau nominal"

type SortOptionsResponse struct {
	Options           []model.SortOptionInfo `json:"options"`
	SearchPlaceholder string                 `json:"search_placeholder"`
}

//encore:api public path=/v1/sort-options method=GET
func (s *Service) SortOptions(ctx context.Context) (*SortOptionsResponse, error) {
	return &SortOptionsResponse{
		Options:           model.SortOptions(),
		SearchPlaceholder: searchPlaceholder,
	}, nil
}
