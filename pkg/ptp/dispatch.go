package ptp

// Payload retrieves a parsed Message's typed dataField. The original C++
// library used dynamic_cast plus function-pointer identity comparisons to
// recover the concrete type behind a base-class pointer (MessageDispatcher
// in msgCall.cpp); a type parameter does the same job here without any
// runtime type registry of its own.
func Payload[T any](m *Message) (T, MNGError) {
	var zero T
	v, ok := m.data.(T)
	if !ok {
		return zero, ErrInvalidTLV
	}
	return v, ErrOK
}

// Dispatcher maps management IDs to handlers over one payload type T,
// generalizing MessageDispatcher's per-ID callback table (msgCall.cpp) to
// any Go type instead of one hand-written switch per struct.
type Dispatcher[T any] struct {
	handlers map[ManagementId]func(*Message, T)
	fallback func(*Message)
}

// NewDispatcher returns a Dispatcher with no handlers registered.
func NewDispatcher[T any]() *Dispatcher[T] {
	return &Dispatcher[T]{handlers: make(map[ManagementId]func(*Message, T))}
}

// On registers fn to run when a dispatched Message carries id and its
// payload asserts to T.
func (d *Dispatcher[T]) On(id ManagementId, fn func(*Message, T)) *Dispatcher[T] {
	d.handlers[id] = fn
	return d
}

// OnUnhandled registers a fallback invoked when no handler matches, or the
// payload does not assert to T (e.g. a MANAGEMENT_ERROR_STATUS reply).
func (d *Dispatcher[T]) OnUnhandled(fn func(*Message)) *Dispatcher[T] {
	d.fallback = fn
	return d
}

// Dispatch runs the handler registered for m's ID, if any.
func (d *Dispatcher[T]) Dispatch(m *Message) {
	if fn, ok := d.handlers[m.id]; ok {
		if v, e := Payload[T](m); e == ErrOK {
			fn(m, v)
			return
		}
	}
	if d.fallback != nil {
		d.fallback(m)
	}
}

// Builder pairs a management ID with a typed payload constructor,
// generalizing MessageBuilder (msgCall.cpp) which used to hold one
// build-function pointer per concrete dataField struct.
type Builder[T any] struct {
	ID ManagementId
}

// NewBuilder returns a Builder bound to id; T should be the pointer type
// the ID's registered proc expects (e.g. *DefaultDataSet), or any for
// empty/scalar-wrapped IDs.
func NewBuilder[T any](id ManagementId) Builder[T] {
	return Builder[T]{ID: id}
}

// Build encodes payload as an id-addressed management TLV of the given
// action into buf.
func (b Builder[T]) Build(m *Message, buf []byte, action Action, payload T) (int, MNGError) {
	return m.BuildInto(buf, b.ID, action, payload)
}
