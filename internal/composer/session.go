package composer

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"oficina_xpto/internal/domain/entities"
)

// ReferenceLoader is the read side of the persistence collaborator: the five
// list operations the composer selects from. Vehicles are returned unfiltered
// and narrowed client-side by customer.
type ReferenceLoader interface {
	ListCustomers(ctx context.Context) ([]entities.Customer, error)
	ListVehicles(ctx context.Context) ([]entities.Vehicle, error)
	ListTechnicians(ctx context.Context) ([]entities.Technician, error)
	ListParts(ctx context.Context) ([]entities.Part, error)
	ListWorkServices(ctx context.Context) ([]entities.WorkService, error)
}

// ReferenceDataLoadError records one failed reference list fetch. The list
// degrades to empty and composing continues; the failure is surfaced as a
// non-blocking notice.
type ReferenceDataLoadError struct {
	List string
	Err  error
}

func (e *ReferenceDataLoadError) Error() string {
	return fmt.Sprintf("loading %s reference data: %v", e.List, e.Err)
}

func (e *ReferenceDataLoadError) Unwrap() error { return e.Err }

// LoadReferenceData fetches all five reference lists concurrently. The
// fetches are independent; a failed list comes back empty alongside its load
// error instead of failing the whole snapshot.
func LoadReferenceData(ctx context.Context, loader ReferenceLoader) (ReferenceData, []*ReferenceDataLoadError) {
	var (
		refs     ReferenceData
		loadErrs [5]*ReferenceDataLoadError
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if refs.Customers, err = loader.ListCustomers(ctx); err != nil {
			loadErrs[0] = &ReferenceDataLoadError{List: "customers", Err: err}
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if refs.Vehicles, err = loader.ListVehicles(ctx); err != nil {
			loadErrs[1] = &ReferenceDataLoadError{List: "vehicles", Err: err}
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if refs.Technicians, err = loader.ListTechnicians(ctx); err != nil {
			loadErrs[2] = &ReferenceDataLoadError{List: "technicians", Err: err}
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if refs.Parts, err = loader.ListParts(ctx); err != nil {
			loadErrs[3] = &ReferenceDataLoadError{List: "parts", Err: err}
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if refs.WorkServices, err = loader.ListWorkServices(ctx); err != nil {
			loadErrs[4] = &ReferenceDataLoadError{List: "workServices", Err: err}
		}
		return nil
	})
	_ = g.Wait()

	var out []*ReferenceDataLoadError
	for _, e := range loadErrs {
		if e != nil {
			out = append(out, e)
		}
	}
	return refs, out
}

// Session ties one composer to its reference loader for the lifetime of a
// form interaction.
type Session struct {
	loader   ReferenceLoader
	Composer *Composer
	loadErrs []*ReferenceDataLoadError
}

// NewSession loads a reference snapshot and hands back a composer over it.
// Partial load failures do not abort the session; they are reported by
// LoadErrors.
func NewSession(ctx context.Context, loader ReferenceLoader) *Session {
	refs, errs := LoadReferenceData(ctx, loader)
	return &Session{loader: loader, Composer: New(refs), loadErrs: errs}
}

// LoadErrors returns the reference lists that failed to load, if any.
func (s *Session) LoadErrors() []*ReferenceDataLoadError { return s.loadErrs }

// SelectCustomer sets the customer and refreshes the selectable vehicle set
// from the loader. A fetch that resolves after the customer changed again is
// discarded by the composer's generation check; there is no cancellation
// beyond that. On fetch failure the snapshot-derived set stays in place.
func (s *Session) SelectCustomer(ctx context.Context, customerID string) *ReferenceDataLoadError {
	fetch := s.Composer.SetCustomer(customerID)
	if customerID == "" {
		return nil
	}
	vehicles, err := s.loader.ListVehicles(ctx)
	if err != nil {
		return &ReferenceDataLoadError{List: "vehicles", Err: err}
	}
	s.Composer.ApplyVehicles(fetch, vehicles)
	return nil
}
