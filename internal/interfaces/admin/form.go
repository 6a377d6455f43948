package admin

import (
	"context"
	"errors"
	"sync"

	"github.com/jhoicas/couponhub-api/pkg/apiclient"
)

var (
	// ErrInvalidForm la validación local falló; no se envió nada.
	ErrInvalidForm = errors.New("formulario inválido")
	// ErrSubmitInFlight ya hay un envío en curso para este formulario.
	ErrSubmitInFlight = errors.New("envío en curso")
	// ErrNotCreated el servidor respondió 2xx sin success:true.
	ErrNotCreated = errors.New("el servidor no confirmó la creación")
)

// Textos de los toasts.
const (
	toastSuccessTitle = "Success"
	toastFailureTitle = "Uh Oh!"
	fallbackError     = "An error occurred."
	submittingLabel   = "Creating..."
)

// lifecycle ciclo de envío compartido por los tres formularios.
type lifecycle struct {
	notifier     Notifier
	invalidators []Invalidator
	successMsg   string
	idleLabel    string

	mu       sync.Mutex
	inFlight bool
}

func (l *lifecycle) begin() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.inFlight {
		return false
	}
	l.inFlight = true
	return true
}

func (l *lifecycle) end() {
	l.mu.Lock()
	l.inFlight = false
	l.mu.Unlock()
}

// Submitting true mientras hay un envío en curso (botón deshabilitado).
func (l *lifecycle) Submitting() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inFlight
}

// SubmitLabel texto del botón de envío.
func (l *lifecycle) SubmitLabel() string {
	if l.Submitting() {
		return submittingLabel
	}
	return l.idleLabel
}

// submit valida, envía y aplica el reseteo que corresponde al resultado:
// éxito = onSuccess (reseteo total) + invalidación + toast; fallo = toast destructivo + onFailure.
func (l *lifecycle) submit(ctx context.Context, valid bool, send func(context.Context) (bool, error), onSuccess, onFailure func()) error {
	if !valid {
		return ErrInvalidForm
	}
	if !l.begin() {
		return ErrSubmitInFlight
	}
	defer l.end()

	created, err := send(ctx)
	if err == nil && !created {
		err = ErrNotCreated
	}
	if err != nil {
		l.notify(Toast{Title: toastFailureTitle, Description: failureMessage(err), Variant: ToastDestructive})
		onFailure()
		return err
	}

	onSuccess()
	for _, inv := range l.invalidators {
		inv.Invalidate()
	}
	l.notify(Toast{Title: toastSuccessTitle, Description: l.successMsg, Variant: ToastDefault})
	return nil
}

func (l *lifecycle) notify(t Toast) {
	if l.notifier != nil {
		l.notifier.Notify(t)
	}
}

// failureMessage mensaje del servidor si lo hubo; si no, el genérico.
func failureMessage(err error) string {
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallbackError
}
