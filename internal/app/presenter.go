package app

import "github.com/akyairhashvil/meditimer/internal/models"

// Presenter shows one-button notices. Notify is called with the App locked
// and must not call back into it.
//
//go:generate mockgen -source=presenter.go -destination=../mocks/mock_presenter.go -package=mocks
type Presenter interface {
	Notify(n models.Notice)
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(models.Notice)

func (f PresenterFunc) Notify(n models.Notice) { f(n) }
