// internal/transport/http/handlers.go
package http

import (
	"merowoda-service/internal/service"
)

type Handler struct {
	subscriptions *service.SubscriptionService
	donations     *service.DonationService
	broadcasts    *service.BroadcastService
	notices       *service.NoticeService
}

func NewHandler(
	subscriptions *service.SubscriptionService,
	donations *service.DonationService,
	broadcasts *service.BroadcastService,
	notices *service.NoticeService,
) *Handler {
	return &Handler{
		subscriptions: subscriptions,
		donations:     donations,
		broadcasts:    broadcasts,
		notices:       notices,
	}
}
