package http

import (
	"bufio"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/CajaDiaria-api/internal/application/events"
	"github.com/jhoicas/CajaDiaria-api/internal/application/usecase"
	"github.com/jhoicas/CajaDiaria-api/pkg/logger"
	"github.com/valyala/fasthttp"
)

// keepaliveInterval separa los comentarios SSE que mantienen viva la conexión
// a través de proxies intermedios.
const keepaliveInterval = 25 * time.Second

// EventsHandler expone el stream SSE de cambios. El cliente abre la conexión
// con EventSource y ante cada evento "change" vuelve a consultar los endpoints
// que le interesan.
type EventsHandler struct {
	hub      *events.Hub
	profiles *usecase.ProfileUseCase
	log      *logger.Logger
}

// NewEventsHandler construye el handler de eventos.
func NewEventsHandler(hub *events.Hub, profiles *usecase.ProfileUseCase, log *logger.Logger) *EventsHandler {
	return &EventsHandler{hub: hub, profiles: profiles, log: log.Module("sse")}
}

// Stream godoc
// @Summary      Stream de cambios (SSE)
// @Description  Los admin reciben todos los eventos; el resto solo los propios
// @Description  y los globales. EventSource no fija headers: el token puede ir
// @Description  en ?token=.
// @Tags         events
// @Produce      text/event-stream
// @Security     BearerAuth
// @Router       /api/events [get]
func (h *EventsHandler) Stream(c *fiber.Ctx) error {
	userID := GetUserID(c)
	// La visibilidad se fija al conectar; si el rol cambia, el cliente
	// reconecta con su token nuevo.
	admin, err := h.profiles.IsAdmin(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	sub := h.hub.Subscribe(userID, admin)
	h.log.Debug().Str("user_id", userID).Bool("admin", admin).Int("subscribers", h.hub.SubscriberCount()).Msg("cliente SSE conectado")

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer func() {
			h.hub.Unsubscribe(sub)
			h.log.Debug().Str("user_id", userID).Msg("cliente SSE desconectado")
		}()

		fmt.Fprint(w, "event: ready\ndata: {}\n\n")
		if err := w.Flush(); err != nil {
			return
		}

		keepalive := time.NewTicker(keepaliveInterval)
		defer keepalive.Stop()

		for {
			select {
			case ev, ok := <-sub.C():
				if !ok {
					return
				}
				payload, err := json.Marshal(ev)
				if err != nil {
					continue
				}
				fmt.Fprintf(w, "event: change\ndata: %s\n\n", payload)
				if err := w.Flush(); err != nil {
					return
				}
			case <-keepalive.C:
				fmt.Fprint(w, ": keepalive\n\n")
				if err := w.Flush(); err != nil {
					return
				}
			}
		}
	}))
	return nil
}
