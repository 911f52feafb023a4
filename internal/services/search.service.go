package services

import (
	"fmt"

	"palahian/internal/repository"
	"palahian/internal/search"
)

type SearchService struct {
	chickens repository.ChickenRepository
	users    repository.UserRepository
}

func NewSearchService(chickens repository.ChickenRepository, users repository.UserRepository) *SearchService {
	return &SearchService{chickens: chickens, users: users}
}

// Search runs filter against chickens and sellers as the category allows.
// A blank query returns empty collections without touching storage.
func (s *SearchService) Search(filter search.Filter) (search.Result, error) {
	result := search.EmptyResult()
	if filter.Blank() {
		return result, nil
	}

	if filter.IncludesChickens() {
		chickens, err := s.chickens.Search(filter)
		if err != nil {
			return search.Result{}, fmt.Errorf("failed to search chickens: %w", err)
		}
		if chickens != nil {
			result.Chickens = chickens
		}
	}

	if len(filter.SellerRoles()) > 0 {
		sellers, err := s.users.SearchSellers(filter)
		if err != nil {
			return search.Result{}, fmt.Errorf("failed to search sellers: %w", err)
		}
		if sellers != nil {
			result.Sellers = sellers
		}
	}

	return result, nil
}
