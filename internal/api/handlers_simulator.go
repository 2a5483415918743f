// handlers_simulator.go - 3D configurator session handlers
package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/mohamedtouja/multipoles/internal/scene"
	"github.com/mohamedtouja/multipoles/internal/simulator"
	"github.com/mohamedtouja/multipoles/internal/storage"
)

// SimulatorHandlerImpl implements the SimulatorHandler interface
type SimulatorHandlerImpl struct {
	manager *simulator.Manager
	content ContentProvider
	store   storage.Store
}

// NewSimulatorHandler creates a new simulator handler
func NewSimulatorHandler(manager *simulator.Manager, content ContentProvider, store storage.Store) SimulatorHandler {
	return &SimulatorHandlerImpl{
		manager: manager,
		content: content,
		store:   store,
	}
}

// SceneResponse pairs the session state with the composed scene so a single
// poll refreshes both.
type SceneResponse struct {
	Session *simulator.Session `json:"session" msgpack:"session"`
	Scene   *scene.Scene       `json:"scene" msgpack:"scene"`
}

// HandleCreateSession starts a configurator session with default state.
func (h *SimulatorHandlerImpl) HandleCreateSession(c echo.Context) error {
	s := h.manager.CreateSession()
	return c.JSON(http.StatusCreated, s)
}

// HandleGetSession returns the current session state.
func (h *SimulatorHandlerImpl) HandleGetSession(c echo.Context) error {
	id := c.Param("sessionId")
	s, ok := h.manager.GetSession(id)
	if !ok {
		return NewNotFoundError("simulator session", id)
	}
	return c.JSON(http.StatusOK, s)
}

// HandleSetParams applies a partial update to color, material or height.
func (h *SimulatorHandlerImpl) HandleSetParams(c echo.Context) error {
	id := c.Param("sessionId")

	var update simulator.ParamsUpdate
	if err := c.Bind(&update); err != nil {
		return NewBadRequestError("invalid request body", err)
	}

	s, err := h.manager.SetParams(id, update)
	if err != nil {
		if _, ok := h.manager.GetSession(id); !ok {
			return NewNotFoundError("simulator session", id)
		}
		return NewBadRequestError("invalid configurator parameters", err)
	}

	return c.JSON(http.StatusOK, s)
}

// HandleSelectModel switches the session to a product model by ID. An empty
// or absent modelId clears the selection back to the placeholder.
func (h *SimulatorHandlerImpl) HandleSelectModel(c echo.Context) error {
	id := c.Param("sessionId")

	var req struct {
		ModelID string `json:"modelId"`
	}
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError("invalid request body", err)
	}

	if req.ModelID == "" {
		s, err := h.manager.SelectModel(id, nil)
		if err != nil {
			return NewNotFoundError("simulator session", id)
		}
		return c.JSON(http.StatusOK, s)
	}

	model, err := h.content.Model3DByID(c.Request().Context(), req.ModelID)
	if err != nil {
		return NewNotFoundError("3D model", req.ModelID)
	}

	s, err := h.manager.SelectModel(id, model)
	if err != nil {
		return NewNotFoundError("simulator session", id)
	}
	return c.JSON(http.StatusOK, s)
}

// HandleSessionKeepAlive refreshes the cleanup timer for an active session.
func (h *SimulatorHandlerImpl) HandleSessionKeepAlive(c echo.Context) error {
	id := c.Param("sessionId")
	if !h.manager.KeepAlive(id) {
		return NewNotFoundError("simulator session", id)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// HandleDeleteSession removes a session explicitly.
func (h *SimulatorHandlerImpl) HandleDeleteSession(c echo.Context) error {
	id := c.Param("sessionId")
	if !h.manager.DeleteSession(id) {
		return NewNotFoundError("simulator session", id)
	}
	return c.NoContent(http.StatusNoContent)
}

// HandleGetScene returns the composed scene as JSON.
func (h *SimulatorHandlerImpl) HandleGetScene(c echo.Context) error {
	resp, err := h.sceneResponse(c.Param("sessionId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

// HandleGetSceneMsgpack returns the composed scene msgpack-encoded. Vertex
// buffers get large; msgpack keeps the polling payload compact.
func (h *SimulatorHandlerImpl) HandleGetSceneMsgpack(c echo.Context) error {
	resp, err := h.sceneResponse(c.Param("sessionId"))
	if err != nil {
		return err
	}

	data, err := msgpack.Marshal(resp)
	if err != nil {
		return NewInternalError("failed to encode scene", err)
	}

	return c.Blob(http.StatusOK, "application/x-msgpack", data)
}

func (h *SimulatorHandlerImpl) sceneResponse(id string) (*SceneResponse, error) {
	s, ok := h.manager.GetSession(id)
	if !ok {
		return nil, NewNotFoundError("simulator session", id)
	}

	sc, err := h.manager.SceneSnapshot(id)
	if err != nil {
		return nil, NewNotFoundError("simulator session", id)
	}

	return &SceneResponse{Session: s, Scene: sc}, nil
}

// HandleGetAsset serves a cached asset file by ID.
func (h *SimulatorHandlerImpl) HandleGetAsset(c echo.Context) error {
	id := c.Param("id")

	info, err := h.store.Get(id)
	if err != nil {
		return NewNotFoundError("asset", id)
	}

	path, err := h.store.GetFilePath(id)
	if err != nil {
		return NewInternalError("failed to resolve asset path", err)
	}

	c.Response().Header().Set("Content-Disposition", `inline; filename="`+info.Name+`"`)
	return c.File(path)
}
