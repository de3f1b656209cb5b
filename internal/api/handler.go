package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"

	painterr "github.com/amterp/paintbox/internal/errors"
	"github.com/amterp/paintbox/internal/inventory"
	"github.com/amterp/paintbox/internal/model"
	"go.uber.org/zap"
)

// ItemsResponse is the JSON response for every item endpoint.
type ItemsResponse struct {
	Items []model.PaintItem `json:"items"`
	Added *bool             `json:"added,omitempty"`
}

// AddItemRequest is the JSON body for POST /api/v1/items.
type AddItemRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Handler contains all HTTP handlers for the API.
//
// HTTP requests arrive on many goroutines but the inventory is single-owner,
// so every inventory call happens under mu. Each action therefore completes
// (mutate, persist, render) before the next one starts.
type Handler struct {
	mu           sync.Mutex
	inv          *inventory.Inventory
	defaultColor string
	log          *zap.Logger
}

// NewHandler creates a new handler for inv. The inventory's renderer should
// be the server's WebSocketHub.
func NewHandler(inv *inventory.Inventory, defaultColor string, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	if defaultColor == "" {
		defaultColor = model.DefaultColor
	}
	return &Handler{
		inv:          inv,
		defaultColor: defaultColor,
		log:          log,
	}
}

// RegisterRoutes sets up all API routes on the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/items", h.ListItems)
	mux.HandleFunc("POST /api/v1/items", h.AddItem)
	mux.HandleFunc("DELETE /api/v1/items/{index}", h.DeleteItem)
	mux.HandleFunc("GET /favicon.svg", h.GetFavicon)

	// Static files (frontend)
	mux.Handle("/", h.StaticHandler())
}

// Start loads and renders the inventory.
func (h *Handler) Start() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.inv.Start()
}

// OnSlotChange implements SlotWatcherSubscriber. Any change to the slot,
// including one caused by this server's own save, reloads the inventory.
func (h *Handler) OnSlotChange(change SlotChange) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.log.Debug("reloading inventory", zap.String("key", change.Key), zap.String("type", string(change.Type)))
	h.inv.Reload()
}

// ListItems handles GET /api/v1/items.
func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	items := h.inv.Items()
	h.mu.Unlock()

	JSON(w, http.StatusOK, ItemsResponse{Items: items})
}

// AddItem handles POST /api/v1/items. A blank name is not an error: the
// inventory is returned unchanged with added=false.
func (h *Handler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		BadRequest(w, "Invalid JSON body")
		return
	}

	color := req.Color
	if color == "" {
		color = h.defaultColor
	}

	h.mu.Lock()
	added := h.inv.Add(req.Name, color)
	items := h.inv.Items()
	h.mu.Unlock()

	status := http.StatusOK
	if added {
		status = http.StatusCreated
	}
	JSON(w, status, ItemsResponse{Items: items, Added: &added})
}

// DeleteItem handles DELETE /api/v1/items/{index}. index is the 0-based
// position the page rendered.
func (h *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	raw := r.PathValue("index")
	index, err := strconv.Atoi(raw)
	if err != nil {
		BadRequest(w, "Index must be an integer")
		return
	}

	h.mu.Lock()
	deleted := h.inv.DeleteItem(index)
	items := h.inv.Items()
	h.mu.Unlock()

	if !deleted {
		Error(w, painterr.ItemNotFound(raw))
		return
	}
	JSON(w, http.StatusOK, ItemsResponse{Items: items})
}
