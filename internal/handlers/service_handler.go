package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Mmasetshaba28/haircut-booking/internal/cache"
	domain "github.com/Mmasetshaba28/haircut-booking/internal/domain/appointment"
	"github.com/Mmasetshaba28/haircut-booking/internal/httperr"
	"github.com/Mmasetshaba28/haircut-booking/internal/httpresp"
)

type ServiceHandler struct {
	repo    domain.Repository
	catalog *cache.ServiceCatalog
}

func NewServiceHandler(repo domain.Repository, catalog *cache.ServiceCatalog) *ServiceHandler {
	return &ServiceHandler{repo: repo, catalog: catalog}
}

func (h *ServiceHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if services, ok := h.catalog.Get(ctx); ok {
		httpresp.List(c, services)
		return
	}

	services, err := h.repo.ListActiveServices(ctx)
	if err != nil {
		httperr.Internal(c, "failed_to_list_services", "Could not load services.")
		return
	}

	h.catalog.Put(ctx, services)
	httpresp.List(c, services)
}

func (h *ServiceHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Service id must be numeric.")
		return
	}

	svc, err := h.repo.GetService(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			httperr.NotFound(c, httperr.CodeServiceNotFound, "Service not found.")
			return
		}
		httperr.Internal(c, "failed_to_load_service", "Could not load service.")
		return
	}
	if !svc.Active {
		httperr.NotFound(c, httperr.CodeServiceNotFound, "Service not found.")
		return
	}

	httpresp.OK(c, svc)
}
