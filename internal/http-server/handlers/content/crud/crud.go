// Package crud serves the admin and public endpoints of the simple content
// collections: popup venues, WiFi spots, school programs, footer social links
// and contact messages.
package crud

import (
	"context"
	"debaren/internal/lib/api/errmap"
	"debaren/internal/lib/api/request"
	"debaren/internal/lib/api/response"
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/render"
)

var errDecode = errors.New("failed to decode request")

var decodeMapping = errmap.Mapping{Err: errDecode, Status: http.StatusBadRequest}

type ListResponse[T any] struct {
	response.Response
	Items []T `json:"items"`
}

type ItemResponse[T any] struct {
	response.Response
	Item *T `json:"item"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Store
type Store[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int64) (*T, error)
	Create(ctx context.Context, item *T, upload *multipart.FileHeader) (*T, error)
	Update(ctx context.Context, id int64, item *T, upload *multipart.FileHeader) (*T, error)
	Delete(ctx context.Context, id int64) error
}

// Decoder reads one record and its optional image upload from a request.
type Decoder[T any] func(w http.ResponseWriter, r *http.Request) (*T, *multipart.FileHeader, error)

// JSON decodes a JSON body. Records decoded this way never carry uploads.
func JSON[T any]() Decoder[T] {
	return func(_ http.ResponseWriter, r *http.Request) (*T, *multipart.FileHeader, error) {
		item := new(T)
		if err := render.DecodeJSON(r.Body, item); err != nil {
			return nil, nil, errors.Join(errDecode, err)
		}
		return item, nil, nil
	}
}

// Form decodes a multipart or urlencoded body with parse.
func Form[T any](maxBytes int64, parse func(*multipart.Form) (*T, *multipart.FileHeader, error)) Decoder[T] {
	return func(w http.ResponseWriter, r *http.Request) (*T, *multipart.FileHeader, error) {
		form, err := request.Form(w, r, maxBytes)
		if err != nil {
			return nil, nil, err
		}
		return parse(form)
	}
}

func NewList[T any](log *slog.Logger, resource string, store Store[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.content.crud.NewList"

		log := log.With(slog.String("op", op), slog.String("resource", resource))

		items, err := store.List(r.Context())
		if err != nil {
			errmap.Write(w, r, log, err, "failed to get "+resource)
			return
		}

		log.Info("items retrieved", slog.Int("count", len(items)))

		if items == nil {
			items = []T{}
		}

		render.JSON(w, r, ListResponse[T]{
			Response: response.OK(),
			Items:    items,
		})
	}
}

func NewGet[T any](log *slog.Logger, resource string, store Store[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.content.crud.NewGet"

		log := log.With(slog.String("op", op), slog.String("resource", resource))

		id, err := request.ID(r, "id")
		if err != nil {
			errmap.Write(w, r, log, err, "failed to get "+resource)
			return
		}

		item, err := store.Get(r.Context(), id)
		if err != nil {
			errmap.Write(w, r, log.With(slog.Int64("id", id)), err, "failed to get "+resource)
			return
		}

		responseOK(w, r, item)
	}
}

func NewCreate[T any](log *slog.Logger, resource string, store Store[T], decode Decoder[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.content.crud.NewCreate"

		log := log.With(slog.String("op", op), slog.String("resource", resource))

		item, upload, err := decode(w, r)
		if err != nil {
			errmap.Write(w, r, log, err, "failed to create "+resource, decodeMapping)
			return
		}

		created, err := store.Create(r.Context(), item, upload)
		if err != nil {
			errmap.Write(w, r, log, err, "failed to create "+resource)
			return
		}

		log.Info("item created", slog.Bool("with_upload", upload != nil))

		render.Status(r, http.StatusCreated)
		responseOK(w, r, created)
	}
}

func NewUpdate[T any](log *slog.Logger, resource string, store Store[T], decode Decoder[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.content.crud.NewUpdate"

		log := log.With(slog.String("op", op), slog.String("resource", resource))

		id, err := request.ID(r, "id")
		if err != nil {
			errmap.Write(w, r, log, err, "failed to update "+resource)
			return
		}

		log = log.With(slog.Int64("id", id))

		item, upload, err := decode(w, r)
		if err != nil {
			errmap.Write(w, r, log, err, "failed to update "+resource, decodeMapping)
			return
		}

		updated, err := store.Update(r.Context(), id, item, upload)
		if err != nil {
			errmap.Write(w, r, log, err, "failed to update "+resource)
			return
		}

		log.Info("item updated", slog.Bool("with_upload", upload != nil))

		responseOK(w, r, updated)
	}
}

func NewDelete[T any](log *slog.Logger, resource string, store Store[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.content.crud.NewDelete"

		log := log.With(slog.String("op", op), slog.String("resource", resource))

		id, err := request.ID(r, "id")
		if err != nil {
			errmap.Write(w, r, log, err, "failed to delete "+resource)
			return
		}

		if err = store.Delete(r.Context(), id); err != nil {
			errmap.Write(w, r, log.With(slog.Int64("id", id)), err, "failed to delete "+resource)
			return
		}

		log.Info("item deleted", slog.Int64("id", id))

		render.JSON(w, r, response.OK())
	}
}

func responseOK[T any](w http.ResponseWriter, r *http.Request, item *T) {
	render.JSON(w, r, ItemResponse[T]{
		Response: response.OK(),
		Item:     item,
	})
}
