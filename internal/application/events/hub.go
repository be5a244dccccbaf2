// Package events implementa el bus de cambios en proceso: cada mutación publica
// qué colección y qué usuario fueron afectados, y los clientes suscritos (SSE)
// vuelven a ejecutar sus queries. Es la pieza "reactiva" del sistema: no viaja
// el documento, solo la invalidación.
package events

import "sync"

// Acciones publicadas por las mutaciones.
const (
	ActionUpserted = "upserted"
	ActionDeleted  = "deleted"
	ActionReset    = "reset"
)

// Colecciones observables.
const (
	CollectionEntries  = "daily_entries"
	CollectionProfiles = "user_profiles"
	CollectionUsers    = "users"
)

// Event notificación de cambio. UserID identifica al dueño del documento
// afectado; vacío significa cambio global (resets) y llega a todos.
type Event struct {
	Collection string `json:"collection"`
	Action     string `json:"action"`
	UserID     string `json:"user_id,omitempty"`
	Date       string `json:"date,omitempty"` // solo para daily_entries
}

// Subscription canal de eventos de un cliente conectado.
type Subscription struct {
	ch     chan Event
	userID string
	admin  bool
}

// C devuelve el canal de lectura de eventos.
func (s *Subscription) C() <-chan Event { return s.ch }

// Hub fan-out de eventos a las suscripciones activas.
type Hub struct {
	mu   sync.RWMutex
	subs map[*Subscription]struct{}
}

// NewHub construye el hub vacío.
func NewHub() *Hub {
	return &Hub{subs: make(map[*Subscription]struct{})}
}

// Subscribe registra un cliente. Los admin reciben todos los eventos; el resto
// solo los de su propio usuario y los globales.
func (h *Hub) Subscribe(userID string, admin bool) *Subscription {
	s := &Subscription{
		ch:     make(chan Event, 16),
		userID: userID,
		admin:  admin,
	}
	h.mu.Lock()
	h.subs[s] = struct{}{}
	h.mu.Unlock()
	return s
}

// Unsubscribe da de baja la suscripción y cierra su canal.
func (h *Hub) Unsubscribe(s *Subscription) {
	h.mu.Lock()
	_, ok := h.subs[s]
	delete(h.subs, s)
	h.mu.Unlock()
	if ok {
		close(s.ch)
	}
}

// Publish entrega el evento a las suscripciones con visibilidad sobre él.
// El envío nunca bloquea: si el buffer del cliente está lleno se descarta,
// el cliente re-consultará con el siguiente evento que sí reciba.
func (h *Hub) Publish(ev Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for s := range h.subs {
		if !s.visible(ev) {
			continue
		}
		select {
		case s.ch <- ev:
		default:
		}
	}
}

// SubscriberCount cantidad de clientes conectados (para logging y tests).
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

func (s *Subscription) visible(ev Event) bool {
	if s.admin || ev.UserID == "" {
		return true
	}
	return ev.UserID == s.userID
}
