package services

import (
	"context"
	"fmt"

	"medstore/filters"
)

type ResultKind string

const (
	KindProduct     ResultKind = "product"
	KindTransaction ResultKind = "transaction"
	KindCustomer    ResultKind = "customer"
	KindSupplier    ResultKind = "supplier"
)

// Per-kind caps and the overall cap of the global search.
const (
	searchProducts     = 5
	searchTransactions = 3
	searchCustomers    = 3
	searchSuppliers    = 3
	searchMaxResults   = 10
)

type SearchResult struct {
	Kind     ResultKind `json:"type"`
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	Subtitle string     `json:"subtitle,omitempty"`
	Data     any        `json:"data"`
}

// Search runs one sub-search per entity kind and concatenates them, products
// first, then transactions, customers and suppliers.
func (s *Service) Search(ctx context.Context, q string) ([]SearchResult, error) {
	term, ok := filters.SearchTerm(q, filters.MinGlobalSearchLength)
	if !ok {
		return []SearchResult{}, nil
	}
	out := []SearchResult{}

	products, err := s.store.ListProducts(ctx, filters.ProductFilter{Search: term, Limit: searchProducts})
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	for _, p := range products {
		out = append(out, SearchResult{Kind: KindProduct, ID: string(p.ID), Title: p.Name, Subtitle: p.Manufacturer, Data: viewOf(p)})
	}

	txns, err := s.store.ListTransactions(ctx, filters.TransactionFilter{Text: term, Limit: searchTransactions})
	if err != nil {
		return nil, fmt.Errorf("search transactions: %w", err)
	}
	for _, t := range txns {
		out = append(out, SearchResult{
			Kind:     KindTransaction,
			ID:       string(t.ID),
			Title:    t.Counterparty(),
			Subtitle: fmt.Sprintf("%s %.2f", t.Type, t.Total),
			Data:     t,
		})
	}

	customers, err := s.store.ListCustomers(ctx, filters.CustomerFilter{Search: term, Limit: searchCustomers})
	if err != nil {
		return nil, fmt.Errorf("search customers: %w", err)
	}
	for _, c := range customers {
		out = append(out, SearchResult{Kind: KindCustomer, ID: string(c.ID), Title: c.Name, Subtitle: c.Phone, Data: c})
	}

	suppliers, err := s.store.ListSuppliers(ctx, filters.SupplierFilter{Search: term, Limit: searchSuppliers})
	if err != nil {
		return nil, fmt.Errorf("search suppliers: %w", err)
	}
	for _, sp := range suppliers {
		out = append(out, SearchResult{Kind: KindSupplier, ID: string(sp.ID), Title: sp.Name, Subtitle: sp.GSTIN, Data: sp})
	}

	if len(out) > searchMaxResults {
		out = out[:searchMaxResults]
	}
	return out, nil
}
