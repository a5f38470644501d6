package router

import (
	"encoding/json"
	"net/http"
	"reflect"
	"strconv"

	"github.com/sidequests/backend/pkg/errorx"
	"github.com/sidequests/backend/pkg/xcontext"
)

func wrapHandler[Request, Response any](
	r *Router, method string, handler HandlerFunc[Request, Response],
) http.HandlerFunc {
	befores := append([]MiddlewareFunc{}, r.befores...)
	afters := append([]MiddlewareFunc{}, r.afters...)
	closers := append([]CloserFunc{}, r.closers...)

	return func(w http.ResponseWriter, req *http.Request) {
		ctx := xcontext.NewContext(req.Context(), req, w, r.cfg, r.logger, r.db)

		func() {
			if req.Method != method {
				xcontext.SetError(ctx, errorx.New(errorx.BadRequest, "Not supported method %s", req.Method))
				return
			}

			for _, m := range befores {
				if err := m(ctx); err != nil {
					xcontext.SetError(ctx, err)
					return
				}
			}

			var request Request
			if err := bindRequest(ctx, method, &request); err != nil {
				xcontext.SetError(ctx, err)
				return
			}

			resp, err := handler(ctx, &request)
			if err != nil {
				xcontext.SetError(ctx, err)
				return
			}

			xcontext.SetResponse(ctx, resp)

			for _, m := range afters {
				if err := m(ctx); err != nil {
					xcontext.SetError(ctx, err)
					return
				}
			}
		}()

		handleResponse(ctx)

		for _, c := range closers {
			c(ctx)
		}
	}
}

func bindRequest(ctx xcontext.Context, method string, req any) error {
	switch method {
	case http.MethodGet, http.MethodDelete:
		return bindQuery(ctx, req)

	case http.MethodPost, http.MethodPut, http.MethodPatch:
		// Multipart bodies are parsed by the handler itself.
		if contentType := ctx.Request().Header.Get("Content-Type"); contentType != "" {
			if len(contentType) >= 19 && contentType[:19] == "multipart/form-data" {
				return nil
			}
		}

		if ctx.Request().Body == nil || ctx.Request().ContentLength == 0 {
			return nil
		}

		if err := json.NewDecoder(ctx.Request().Body).Decode(req); err != nil {
			ctx.Logger().Debugf("Cannot decode the request body: %v", err)
			return errorx.New(errorx.BadRequest, "Invalid request body")
		}
	}

	return nil
}

// bindQuery fills a request struct from URL query parameters, matched by json
// tag. Only flat structs of string, numeric, and bool fields are supported.
func bindQuery(ctx xcontext.Context, req any) error {
	v := reflect.ValueOf(req).Elem()
	query := ctx.Request().URL.Query()

	for i := 0; i < v.NumField(); i++ {
		name := v.Type().Field(i).Tag.Get("json")
		queryVal := query.Get(name)
		if queryVal == "" {
			continue
		}

		field := v.Field(i)
		switch field.Kind() {
		case reflect.String:
			field.SetString(queryVal)

		case reflect.Int, reflect.Int64:
			val, err := strconv.ParseInt(queryVal, 10, 64)
			if err != nil {
				return errorx.New(errorx.BadRequest, "Invalid value of %s", name)
			}
			field.SetInt(val)

		case reflect.Float64:
			val, err := strconv.ParseFloat(queryVal, 64)
			if err != nil {
				return errorx.New(errorx.BadRequest, "Invalid value of %s", name)
			}
			field.SetFloat(val)

		case reflect.Bool:
			val, err := strconv.ParseBool(queryVal)
			if err != nil {
				return errorx.New(errorx.BadRequest, "Invalid value of %s", name)
			}
			field.SetBool(val)
		}
	}

	return nil
}
