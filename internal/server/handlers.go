package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v3"

	"screenforge/internal/codegen"
	"screenforge/internal/export"
	"screenforge/internal/layout"
	"screenforge/internal/scene"
)

const contentTypeJS = "text/javascript; charset=utf-8"

type sceneResponse struct {
	ID         string          `json:"id"`
	Elements   []scene.Element `json:"elements"`
	SelectedID *string         `json:"selectedId"`
}

type addElementRequest struct {
	Kind string `json:"kind"`
}

type selectRequest struct {
	ID *string `json:"id"`
}

// Generate turns a manifest in the request body into source code without
// creating a session.
func (s *Server) Generate(c fiber.Ctx) error {
	sc, err := manifestScene(c)
	if err != nil {
		return err
	}
	if sc == nil {
		sc = scene.New()
	}
	c.Set(fiber.HeaderContentType, contentTypeJS)
	return c.SendString(codegen.Generate(sc.Elements()))
}

// CreateScene opens a session, seeded from a manifest body when one is sent.
func (s *Server) CreateScene(c fiber.Ctx) error {
	sc, err := manifestScene(c)
	if err != nil {
		return err
	}
	sess := s.sessions.Create(sc)
	return c.Status(http.StatusCreated).JSON(fiber.Map{"id": sess.ID})
}

func (s *Server) GetScene(c fiber.Ctx) error {
	sess, err := s.session(c)
	if err != nil {
		return err
	}

	resp := sceneResponse{
		ID:       sess.ID,
		Elements: sess.Store.Elements(),
	}
	if id := sess.Store.SelectedID(); id != "" {
		resp.SelectedID = &id
	}
	return c.JSON(resp)
}

func (s *Server) DeleteScene(c fiber.Ctx) error {
	if err := s.sessions.Delete(c.Params("id")); err != nil {
		return fiber.NewError(http.StatusNotFound, err.Error())
	}
	return c.SendStatus(http.StatusNoContent)
}

func (s *Server) AddElement(c fiber.Ctx) error {
	sess, err := s.session(c)
	if err != nil {
		return err
	}

	var req addElementRequest
	if err := decodeBody(c, &req); err != nil {
		return err
	}
	kind, err := scene.ParseKind(req.Kind)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	el := sess.Store.AddElement(kind)
	return c.Status(http.StatusCreated).JSON(el)
}

func (s *Server) UpdateElement(c fiber.Ctx) error {
	sess, err := s.session(c)
	if err != nil {
		return err
	}

	var patch scene.ElementPatch
	if err := decodeBody(c, &patch); err != nil {
		return err
	}
	sess.Store.UpdateElement(c.Params("eid"), patch)
	return c.SendStatus(http.StatusNoContent)
}

func (s *Server) UpdateElementStyle(c fiber.Ctx) error {
	sess, err := s.session(c)
	if err != nil {
		return err
	}

	var patch scene.StylePatch
	if err := decodeBody(c, &patch); err != nil {
		return err
	}
	sess.Store.UpdateElementStyle(c.Params("eid"), patch)
	return c.SendStatus(http.StatusNoContent)
}

func (s *Server) DeleteElement(c fiber.Ctx) error {
	sess, err := s.session(c)
	if err != nil {
		return err
	}
	sess.Store.DeleteElement(c.Params("eid"))
	return c.SendStatus(http.StatusNoContent)
}

// SelectElement sets the selection; a null id clears it.
func (s *Server) SelectElement(c fiber.Ctx) error {
	sess, err := s.session(c)
	if err != nil {
		return err
	}

	var req selectRequest
	if err := decodeBody(c, &req); err != nil {
		return err
	}
	id := ""
	if req.ID != nil {
		id = *req.ID
	}
	sess.Store.SelectElement(id)
	return c.SendStatus(http.StatusNoContent)
}

func (s *Server) SelectedElement(c fiber.Ctx) error {
	sess, err := s.session(c)
	if err != nil {
		return err
	}

	el, ok := sess.Store.SelectedElement()
	if !ok {
		return c.SendStatus(http.StatusNoContent)
	}
	return c.JSON(el)
}

// Code returns the generated source. With ?download=1 the response is
// marked as a file attachment.
func (s *Server) Code(c fiber.Ctx) error {
	sess, err := s.session(c)
	if err != nil {
		return err
	}

	if d := c.Query("download"); d == "1" || d == "true" {
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", codegen.Filename))
	}
	c.Set(fiber.HeaderContentType, contentTypeJS)
	return c.SendString(sess.Code.Code())
}

// Preview renders the session as a PNG mock-up.
func (s *Server) Preview(c fiber.Ctx) error {
	sess, err := s.session(c)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := export.EncodePNG(sess.Store.Elements(), &buf); err != nil {
		return fmt.Errorf("render preview: %w", err)
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(buf.Bytes())
}

// ============================================================
// Helpers
// ============================================================

func (s *Server) session(c fiber.Ctx) (*Session, error) {
	sess, err := s.sessions.Get(c.Params("id"))
	if err != nil {
		return nil, fiber.NewError(http.StatusNotFound, err.Error())
	}
	return sess, nil
}

func decodeBody(c fiber.Ctx, v any) error {
	body := c.Body()
	if len(body) == 0 {
		return fiber.NewError(http.StatusBadRequest, "empty body")
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid json: "+err.Error())
	}
	return nil
}

// manifestScene builds a scene from a manifest body. An empty body yields a
// nil scene. YAML is accepted when the request says so.
func manifestScene(c fiber.Ctx) (*scene.Scene, error) {
	body := c.Body()
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, nil
	}

	format := layout.FormatJSON
	if strings.Contains(c.Get(fiber.HeaderContentType), "yaml") {
		format = layout.FormatYAML
	}
	m, err := layout.Decode(bytes.NewReader(body), format)
	if err != nil {
		return nil, fiber.NewError(http.StatusBadRequest, err.Error())
	}
	sc, err := m.Build()
	if err != nil {
		if errors.Is(err, scene.ErrUnknownKind) {
			return nil, fiber.NewError(http.StatusBadRequest, err.Error())
		}
		return nil, err
	}
	return sc, nil
}
