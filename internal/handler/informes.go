package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/managerproapp-hue/IES-sub001/internal/apierror"
	"github.com/managerproapp-hue/IES-sub001/internal/dto"
	"github.com/managerproapp-hue/IES-sub001/internal/service"
)

type InformesHandler struct{ svc service.InformeService }

func NewInformesHandler(svc service.InformeService) *InformesHandler {
	return &InformesHandler{svc: svc}
}

// ObtenerInformeGastos godoc
// @Summary      Informe de gastos por jerarquía académica
// @Description  Devuelve el desglose de costes por profesor, grupo, módulo y ciclo, la estimación por proveedor y los KPIs generales. Cacheado; use refrescar=true para forzar un nuevo cálculo.
// @Tags         informes
// @Produce      json
// @Param        refrescar query bool false "Fuerza recálculo ignorando la caché"
// @Success      200 {object} dto.InformeGastosResponse
// @Failure      500 {object} apierror.APIError
// @Router       /v1/informes/gastos [get]
func (h *InformesHandler) ObtenerInformeGastos(c *gin.Context) {
	var filter dto.InformeFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.GenerarInforme(c.Request.Context(), filter.Refrescar)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("Error al generar el informe"))
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RecalcularInforme godoc
// @Summary      Recalcular informe en segundo plano
// @Description  Encola un trabajo que recalcula el informe completo y actualiza la caché. Responde inmediatamente.
// @Tags         informes
// @Produce      json
// @Success      202 {object} map[string]bool
// @Failure      503 {object} apierror.APIError
// @Router       /v1/informes/gastos/recalcular [post]
func (h *InformesHandler) RecalcularInforme(c *gin.Context) {
	if err := h.svc.RecalcularAsync(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"encolado": true})
}

// SimularInforme godoc
// @Summary      Simular informe sobre un snapshot proporcionado
// @Description  Ejecuta el cálculo completo sobre los registros del cuerpo de la petición, sin tocar la base de datos ni la caché. Útil para escenarios what-if.
// @Tags         informes
// @Accept       json
// @Produce      json
// @Param        body body dto.SimulacionRequest true "Snapshot simulado"
// @Success      200 {object} dto.InformeGastosResponse
// @Failure      400 {object} apierror.APIError
// @Failure      422 {object} apierror.ValidationError
// @Router       /v1/informes/gastos/simulacion [post]
func (h *InformesHandler) SimularInforme(c *gin.Context) {
	var req dto.SimulacionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Simular(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusOK, resp)
}
