package admin

// ToastVariant estilo de la notificación.
type ToastVariant string

const (
	ToastDefault     ToastVariant = "default"
	ToastDestructive ToastVariant = "destructive"
)

// Toast notificación no bloqueante.
type Toast struct {
	Title       string
	Description string
	Variant     ToastVariant
}

// Notifier muestra toasts al usuario.
type Notifier interface {
	Notify(Toast)
}

// NotifierFunc adapta una función a Notifier.
type NotifierFunc func(Toast)

// Notify implementa Notifier.
func (f NotifierFunc) Notify(t Toast) { f(t) }

// Invalidator vista dependiente que debe recargarse tras un alta exitosa.
type Invalidator interface {
	Invalidate()
}
