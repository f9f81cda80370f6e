package planner

import (
	"context"
	"sync"
	"time"
)

// Store persists the full UserData document. Load must return the
// default document when nothing has been saved yet.
type Store interface {
	Load(ctx context.Context) (UserData, error)
	Save(ctx context.Context, data UserData) error
}

// Service serializes mutations over a Store. Every mutation loads a
// fresh snapshot, applies one ledger operation and saves the full
// document back, so each call sees a consistent state.
type Service struct {
	mu    sync.Mutex
	store Store
	table []Holiday
	now   func() time.Time
}

func NewService(store Store, table []Holiday) *Service {
	return &Service{store: store, table: table, now: time.Now}
}

// Summary is the entitlement/usage headline for the current document.
type Summary struct {
	Entitlement int `json:"entitlement"`
	Used        int `json:"used"`
	Balance     int `json:"balance"`
}

// Settings carries optional display and policy updates; nil fields are
// left untouched.
type Settings struct {
	Theme                     *string `json:"theme"`
	IsDarkMode                *bool   `json:"isDarkMode"`
	PreventPublicHolidayLeave *bool   `json:"preventPublicHolidayLeave"`
}

func (s *Service) Data(ctx context.Context) (UserData, error) {
	return s.store.Load(ctx)
}

func (s *Service) Summary(ctx context.Context) (Summary, error) {
	data, err := s.store.Load(ctx)
	if err != nil {
		return Summary{}, err
	}
	return Summary{
		Entitlement: data.Entitlement,
		Used:        len(data.Leaves),
		Balance:     Balance(data.Entitlement, data.Leaves),
	}, nil
}

func (s *Service) SaveLeave(ctx context.Context, entry LeaveEntry) (UserData, error) {
	return s.mutate(ctx, func(data UserData) (UserData, error) {
		leaves, err := UpsertLeave(data.Leaves, entry)
		if err != nil {
			return data, err
		}
		data.Leaves = leaves
		return data, nil
	})
}

func (s *Service) DeleteLeave(ctx context.Context, dateKey string) (UserData, error) {
	return s.mutate(ctx, func(data UserData) (UserData, error) {
		data.Leaves = RemoveLeave(data.Leaves, dateKey)
		return data, nil
	})
}

func (s *Service) SaveHoliday(ctx context.Context, holiday CustomHoliday) (UserData, error) {
	return s.mutate(ctx, func(data UserData) (UserData, error) {
		holidays, err := UpsertCustomHoliday(data.CustomHolidays, holiday)
		if err != nil {
			return data, err
		}
		data.CustomHolidays = holidays
		return data, nil
	})
}

func (s *Service) DeleteHoliday(ctx context.Context, dateKey string) (UserData, error) {
	return s.mutate(ctx, func(data UserData) (UserData, error) {
		data.CustomHolidays = RemoveCustomHoliday(data.CustomHolidays, dateKey)
		return data, nil
	})
}

func (s *Service) SetEntitlement(ctx context.Context, days int) (UserData, error) {
	return s.mutate(ctx, func(data UserData) (UserData, error) {
		if days < 0 {
			return data, ErrNegativeEntitlement
		}
		data.Entitlement = days
		return data, nil
	})
}

func (s *Service) UpdateSettings(ctx context.Context, settings Settings) (UserData, error) {
	return s.mutate(ctx, func(data UserData) (UserData, error) {
		if settings.Theme != nil {
			data.Theme = *settings.Theme
		}
		if settings.IsDarkMode != nil {
			data.IsDarkMode = *settings.IsDarkMode
		}
		if settings.PreventPublicHolidayLeave != nil {
			data.PreventPublicHolidayLeave = *settings.PreventPublicHolidayLeave
		}
		return data, nil
	})
}

// Replace overwrites the whole document, e.g. after a cloud pull.
func (s *Service) Replace(ctx context.Context, data UserData) (UserData, error) {
	return s.mutate(ctx, func(UserData) (UserData, error) {
		return normalize(data), nil
	})
}

func (s *Service) ResolvedHolidays(ctx context.Context) ([]Holiday, error) {
	data, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return ResolveHolidays(s.table, data.CustomHolidays), nil
}

func (s *Service) Stats(ctx context.Context) (Stats, error) {
	data, err := s.store.Load(ctx)
	if err != nil {
		return Stats{}, err
	}
	return YearlyStats(data.Leaves, s.now().Year()), nil
}

func (s *Service) Suggestions(ctx context.Context) ([]Suggestion, error) {
	data, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return Suggest(ResolveHolidays(s.table, data.CustomHolidays), data.Leaves, s.now()), nil
}

func (s *Service) mutate(ctx context.Context, apply func(UserData) (UserData, error)) (UserData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.store.Load(ctx)
	if err != nil {
		return UserData{}, err
	}
	next, err := apply(data)
	if err != nil {
		return data, err
	}
	next.LastUpdated = s.now().UnixMilli()
	if err := s.store.Save(ctx, next); err != nil {
		return data, err
	}
	return next, nil
}
