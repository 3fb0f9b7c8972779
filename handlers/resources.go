package handlers

import (
	"context"
	"net/http"

	"premierlodge/models"
	"premierlodge/services/async"
	"premierlodge/services/notification"
	"premierlodge/services/pms"
	"premierlodge/utils"

	"github.com/gin-gonic/gin"
)

// ResourceHandler exposes the dashboard's CRUD resources. List endpoints run
// through query wrappers so the dashboard can observe the request lifecycle;
// creates run through mutation wrappers; updates and deletes dispatch direct.
type ResourceHandler struct {
	PMS *pms.Client

	rooms    *async.Query[[]models.Room]
	laundry  *async.Query[[]models.LaundryOrder]
	halls    *async.Query[[]models.EventHall]
	bookings *async.Query[[]models.Booking]
	guests   *async.Query[[]models.Guest]

	createRoom    *async.Mutation[models.Room, models.Room]
	createLaundry *async.Mutation[models.LaundryOrder, models.LaundryOrder]
	createHall    *async.Mutation[models.EventHall, models.EventHall]
}

func NewResourceHandler(pmsClient *pms.Client, notifier notification.Notifier) *ResourceHandler {
	logger := utils.GetLogger()
	h := &ResourceHandler{
		PMS:      pmsClient,
		rooms:    async.NewQuery[[]models.Room](notifier, logger),
		laundry:  async.NewQuery[[]models.LaundryOrder](notifier, logger),
		halls:    async.NewQuery[[]models.EventHall](notifier, logger),
		bookings: async.NewQuery[[]models.Booking](notifier, logger),
		guests:   async.NewQuery[[]models.Guest](notifier, logger),
	}
	h.createRoom = async.NewMutation(func(ctx context.Context, room models.Room) (models.Envelope[models.Room], error) {
		return pmsClient.CreateRoom(ctx, room)
	}, notifier, logger)
	h.createLaundry = async.NewMutation(func(ctx context.Context, order models.LaundryOrder) (models.Envelope[models.LaundryOrder], error) {
		return pmsClient.CreateLaundryOrder(ctx, order)
	}, notifier, logger)
	h.createHall = async.NewMutation(func(ctx context.Context, hall models.EventHall) (models.Envelope[models.EventHall], error) {
		return pmsClient.CreateEventHall(ctx, hall)
	}, notifier, logger)
	return h
}

// --- Rooms ---

func (h *ResourceHandler) ListRooms(c *gin.Context) {
	env := h.rooms.Execute(c.Request.Context(), h.PMS.ListRooms)
	respond(c, env)
}

func (h *ResourceHandler) CreateRoom(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	env := h.createRoom.Do(c.Request.Context(), room,
		async.WithSuccessNotice[models.Room]("Room created"),
		async.WithErrorNotice[models.Room]())
	respond(c, env)
}

func (h *ResourceHandler) GetRoom(c *gin.Context) {
	env, err := h.PMS.GetRoom(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to fetch room", err.Error())
		return
	}
	respond(c, env)
}

func (h *ResourceHandler) UpdateRoom(c *gin.Context) {
	var room models.Room
	if err := c.ShouldBindJSON(&room); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	env, err := h.PMS.UpdateRoom(c.Request.Context(), c.Param("id"), room)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "update failed", err.Error())
		return
	}
	respond(c, env)
}

func (h *ResourceHandler) DeleteRoom(c *gin.Context) {
	env, err := h.PMS.DeleteRoom(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "delete failed", err.Error())
		return
	}
	respond(c, env)
}

// --- Laundry orders ---

func (h *ResourceHandler) ListLaundryOrders(c *gin.Context) {
	env := h.laundry.Execute(c.Request.Context(), h.PMS.ListLaundryOrders)
	respond(c, env)
}

func (h *ResourceHandler) CreateLaundryOrder(c *gin.Context) {
	var order models.LaundryOrder
	if err := c.ShouldBindJSON(&order); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	env := h.createLaundry.Do(c.Request.Context(), order,
		async.WithSuccessNotice[models.LaundryOrder]("Laundry order created"),
		async.WithErrorNotice[models.LaundryOrder]())
	respond(c, env)
}

func (h *ResourceHandler) UpdateLaundryOrder(c *gin.Context) {
	var order models.LaundryOrder
	if err := c.ShouldBindJSON(&order); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	env, err := h.PMS.UpdateLaundryOrder(c.Request.Context(), c.Param("id"), order)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "update failed", err.Error())
		return
	}
	respond(c, env)
}

func (h *ResourceHandler) DeleteLaundryOrder(c *gin.Context) {
	env, err := h.PMS.DeleteLaundryOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "delete failed", err.Error())
		return
	}
	respond(c, env)
}

// --- Event halls ---

func (h *ResourceHandler) ListEventHalls(c *gin.Context) {
	env := h.halls.Execute(c.Request.Context(), h.PMS.ListEventHalls)
	respond(c, env)
}

func (h *ResourceHandler) CreateEventHall(c *gin.Context) {
	var hall models.EventHall
	if err := c.ShouldBindJSON(&hall); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	env := h.createHall.Do(c.Request.Context(), hall,
		async.WithSuccessNotice[models.EventHall]("Event hall created"),
		async.WithErrorNotice[models.EventHall]())
	respond(c, env)
}

func (h *ResourceHandler) UpdateEventHall(c *gin.Context) {
	var hall models.EventHall
	if err := c.ShouldBindJSON(&hall); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	env, err := h.PMS.UpdateEventHall(c.Request.Context(), c.Param("id"), hall)
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "update failed", err.Error())
		return
	}
	respond(c, env)
}

func (h *ResourceHandler) DeleteEventHall(c *gin.Context) {
	env, err := h.PMS.DeleteEventHall(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "delete failed", err.Error())
		return
	}
	respond(c, env)
}

// --- Bookings and guests (read-only views) ---

func (h *ResourceHandler) ListBookings(c *gin.Context) {
	env := h.bookings.Execute(c.Request.Context(), h.PMS.ListBookings)
	respond(c, env)
}

func (h *ResourceHandler) ListGuests(c *gin.Context) {
	env := h.guests.Execute(c.Request.Context(), h.PMS.ListGuests)
	respond(c, env)
}

func (h *ResourceHandler) GetGuest(c *gin.Context) {
	env, err := h.PMS.GetGuest(c.Request.Context(), c.Param("guestID"))
	if err != nil {
		utils.JSONError(c, http.StatusBadGateway, "failed to fetch guest", err.Error())
		return
	}
	respond(c, env)
}
