package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/partsyard/internal/model"
	authv1 "github.com/you-humble/partsyard/internal/transport/http/auth/v1"
	"github.com/you-humble/partsyard/internal/transport/http/mocks"
)

const session = "valid-session"

var staff = model.Identity{Subject: "u1", Email: "rodney@yard.example", Name: "Rodney"}

type deps struct {
	catalog  *mocks.MockCatalogService
	admin    *mocks.MockAdminService
	sessions *mocks.MockSessionVerifier
}

func newRouter(t *testing.T) (chi.Router, deps) {
	d := deps{
		catalog:  mocks.NewMockCatalogService(t),
		admin:    mocks.NewMockAdminService(t),
		sessions: mocks.NewMockSessionVerifier(t),
	}
	r := chi.NewRouter()
	NewAdminHandler(d.catalog, d.admin, d.sessions, 1024).Register(r)
	return r, d
}

func (d deps) signedIn() {
	d.sessions.On("VerifySession", mock.Anything, session).Return(staff, nil)
}

func request(method, target string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)
	req.AddCookie(&http.Cookie{Name: authv1.SessionCookie, Value: session})
	return req
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func storedPart() *model.Part {
	return &model.Part{
		ID:           gofakeit.UUID(),
		Name:         "Alternator",
		Category:     model.CategoryElectrical,
		VehicleYear:  2011,
		VehicleMake:  "Toyota",
		VehicleModel: "Camry",
		Condition:    model.ConditionFair,
		PriceCents:   6000,
		YardLocation: "Row C",
		Photos:       []string{},
		StockStatus:  model.StatusAvailable,
		AddedBy:      "Rodney",
		CreatedAt:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		UpdatedAt:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestRequireIdentity(t *testing.T) {
	t.Parallel()

	t.Run("no cookie", func(t *testing.T) {
		t.Parallel()

		r, _ := newRouter(t)
		rec := serve(r, httptest.NewRequest(http.MethodGet, "/admin/api/stats", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("forged cookie", func(t *testing.T) {
		t.Parallel()

		r, d := newRouter(t)
		d.sessions.On("VerifySession", mock.Anything, session).
			Return(model.Identity{}, errors.Join(model.ErrUnauthorized, errors.New("signature is invalid"))).
			Once()

		rec := serve(r, request(http.MethodGet, "/admin/api/stats", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		d.catalog.AssertNotCalled(t, "Aggregate", mock.Anything)
	})

	t.Run("login page is open", func(t *testing.T) {
		t.Parallel()

		r, _ := newRouter(t)
		rec := serve(r, httptest.NewRequest(http.MethodGet, "/admin/login?redirect=/admin/parts", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `data-redirect="/admin/parts"`)
	})
}

func TestDashboard(t *testing.T) {
	t.Parallel()

	r, d := newRouter(t)
	d.signedIn()
	d.catalog.On("Aggregate", mock.Anything).
		Return(&model.PartStats{Total: 10, Available: 6, Sold: 3, OnHold: 1, AddedThisWeek: 2}, nil).
		Once()

	rec := serve(r, request(http.MethodGet, "/admin", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"user": {"email": "rodney@yard.example", "name": "Rodney"},
		"stats": {"total": 10, "available": 6, "sold": 3, "onHold": 1, "addedThisWeek": 2}
	}`, rec.Body.String())
}

func TestListParts(t *testing.T) {
	t.Parallel()

	t.Run("cursor paging with exact make", func(t *testing.T) {
		t.Parallel()

		r, d := newRouter(t)
		d.signedIn()
		d.catalog.On("List", mock.Anything, model.PartsQuery{
			Status:   model.StatusSold,
			Make:     "Toyota",
			Search:   "alt",
			Paging:   model.PagingCursor,
			Cursor:   "abc",
			PageSize: 50,
			Sort:     model.Sort{Field: model.SortVehicleYear, Direction: model.SortAsc},
		}).Return(&model.PartsPage{Parts: []*model.Part{storedPart()}, Total: 60, HasMore: true, NextCursor: "next"}, nil).Once()

		rec := serve(r, request(http.MethodGet,
			"/admin/api/parts?status=Sold&make=Toyota&q=alt&cursor=abc&pageSize=50&sort=vehicleYear&dir=asc", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "next", body["nextCursor"])
		assert.EqualValues(t, 60, body["total"])
		assert.Contains(t, body["parts"].([]any)[0], "yardLocation")
	})

	t.Run("non numeric page size", func(t *testing.T) {
		t.Parallel()

		r, d := newRouter(t)
		d.signedIn()

		rec := serve(r, request(http.MethodGet, "/admin/api/parts?pageSize=lots", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("store outage", func(t *testing.T) {
		t.Parallel()

		r, d := newRouter(t)
		d.signedIn()
		d.catalog.On("List", mock.Anything, mock.Anything).Return((*model.PartsPage)(nil), model.ErrDataUnavailable).Once()

		rec := serve(r, request(http.MethodGet, "/admin/api/parts", nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.JSONEq(t, `{"error":"data temporarily unavailable","retry":true}`, rec.Body.String())
	})
}

func TestCreatePart(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name   string
		body   string
		setup  func(d deps)
		assert func(t *testing.T, rec *httptest.ResponseRecorder)
	}

	tests := []testCase{
		{
			name: "created with pre-minted id",
			body: `{"id":"pre-id","name":"Alternator","category":"electrical","vehicleYear":2011,"price":6000,"mileage":null}`,
			setup: func(d deps) {
				d.admin.On("Create", mock.Anything, staff, mock.MatchedBy(func(in model.PartInput) bool {
					return in.Name == "Alternator" && in.Category == model.CategoryElectrical && in.PriceCents == 6000
				}), "pre-id").Return(storedPart(), nil).Once()
			},
			assert: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusCreated, rec.Code)
			},
		},
		{
			name: "validation errors carry fields",
			body: `{"name":""}`,
			setup: func(d deps) {
				d.admin.On("Create", mock.Anything, staff, mock.Anything, "").
					Return((*model.Part)(nil), &model.ValidationError{Fields: map[string]string{"name": "Part name is required"}}).
					Once()
			},
			assert: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.JSONEq(t, `{"error":"validation failed","fields":{"name":"Part name is required"}}`, rec.Body.String())
			},
		},
		{
			name: "conflict",
			body: `{"id":"taken"}`,
			setup: func(d deps) {
				d.admin.On("Create", mock.Anything, staff, mock.Anything, "taken").Return((*model.Part)(nil), model.ErrConflict).Once()
			},
			assert: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusConflict, rec.Code)
			},
		},
		{
			name: "unknown fields rejected",
			body: `{"price_cents":1}`,
			assert: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r, d := newRouter(t)
			d.signedIn()
			if tt.setup != nil {
				tt.setup(d)
			}

			tt.assert(t, serve(r, request(http.MethodPost, "/admin/api/parts", strings.NewReader(tt.body))))
		})
	}
}

func TestUpdatePart(t *testing.T) {
	t.Parallel()

	r, d := newRouter(t)
	d.signedIn()

	p := storedPart()
	d.admin.On("Update", mock.Anything, staff, p.ID, model.PartPatch{
		PriceCents:   lo.ToPtr(int64(5500)),
		ClearMileage: true,
	}).Return(p, nil).Once()

	rec := serve(r, request(http.MethodPatch, "/admin/api/parts/"+p.ID, strings.NewReader(`{"price":5500,"mileage":null}`)))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestGetAndDeletePart(t *testing.T) {
	t.Parallel()

	r, d := newRouter(t)
	d.signedIn()

	d.catalog.On("PartByID", mock.Anything, "missing").Return((*model.Part)(nil), model.ErrPartNotFound).Once()
	d.admin.On("Delete", mock.Anything, staff, "gone").Return(nil).Once()

	assert.Equal(t, http.StatusNotFound, serve(r, request(http.MethodGet, "/admin/api/parts/missing", nil)).Code)
	assert.Equal(t, http.StatusNoContent, serve(r, request(http.MethodDelete, "/admin/api/parts/gone", nil)).Code)
}

func TestSetStatus(t *testing.T) {
	t.Parallel()

	r, d := newRouter(t)
	d.signedIn()
	d.admin.On("SetStatus", mock.Anything, staff, "p1", model.StatusOnHold).Return(nil).Once()

	rec := serve(r, request(http.MethodPost, "/admin/api/parts/p1/status", strings.NewReader(`{"status":"On Hold"}`)))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestNewPartID(t *testing.T) {
	t.Parallel()

	r, d := newRouter(t)
	d.signedIn()
	d.admin.On("NewPartID").Return("minted").Once()

	rec := serve(r, request(http.MethodPost, "/admin/api/parts/ids", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":"minted"}`, rec.Body.String())
}

func TestBulk(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name       string
		target     string
		body       string
		setup      func(d deps)
		wantStatus int
		wantBody   string
	}

	tests := []testCase{
		{
			name:   "status all done",
			target: "/admin/api/parts/bulk/status",
			body:   `{"ids":["a","b"],"status":"Sold"}`,
			setup: func(d deps) {
				d.admin.On("BulkSetStatus", mock.Anything, staff, []string{"a", "b"}, model.StatusSold).
					Return(&model.BulkResult{Requested: 2, Succeeded: 2}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"status":"done","requested":2,"succeeded":2,"failed":0}`,
		},
		{
			name:   "delete partial",
			target: "/admin/api/parts/bulk/delete",
			body:   `{"ids":["a","b","c"]}`,
			setup: func(d deps) {
				res := model.BulkResult{Requested: 3, Succeeded: 2, Failed: 1}
				d.admin.On("BulkDelete", mock.Anything, staff, []string{"a", "b", "c"}).
					Return(&res, &model.BulkError{Result: res}).
					Once()
			},
			wantStatus: http.StatusMultiStatus,
			wantBody:   `{"status":"partial","requested":3,"succeeded":2,"failed":1}`,
		},
		{
			name:   "empty ids",
			target: "/admin/api/parts/bulk/delete",
			body:   `{"ids":[]}`,
			setup: func(d deps) {
				d.admin.On("BulkDelete", mock.Anything, staff, []string{}).
					Return((*model.BulkResult)(nil), errors.Join(model.ErrInvalidArgument, errors.New("ids must be non-empty"))).
					Once()
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r, d := newRouter(t)
			d.signedIn()
			tt.setup(d)

			rec := serve(r, request(http.MethodPost, tt.target, strings.NewReader(tt.body)))
			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func multipartPhoto(t *testing.T, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}

func TestUploadPhoto(t *testing.T) {
	t.Parallel()

	t.Run("stored", func(t *testing.T) {
		t.Parallel()

		r, d := newRouter(t)
		d.signedIn()
		d.admin.On("UploadPhoto", mock.Anything, staff, "p1", "door.png", "image/png", []byte("png-bytes")).
			Return("https://cdn.example.com/parts/p1/1_door.png", nil).
			Once()

		body, ct := multipartPhoto(t, "door.png", "image/png", []byte("png-bytes"))
		req := request(http.MethodPost, "/admin/api/parts/p1/photos", body)
		req.Header.Set("Content-Type", ct)

		rec := serve(r, req)
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"url":"https://cdn.example.com/parts/p1/1_door.png"}`, rec.Body.String())
	})

	t.Run("not an image", func(t *testing.T) {
		t.Parallel()

		r, d := newRouter(t)
		d.signedIn()
		d.admin.On("UploadPhoto", mock.Anything, staff, "p1", "notes.txt", "text/plain", mock.Anything).
			Return("", model.ErrUnsupportedMedia).
			Once()

		body, ct := multipartPhoto(t, "notes.txt", "text/plain", []byte("hello"))
		req := request(http.MethodPost, "/admin/api/parts/p1/photos", body)
		req.Header.Set("Content-Type", ct)

		assert.Equal(t, http.StatusUnsupportedMediaType, serve(r, req).Code)
	})

	t.Run("missing file field", func(t *testing.T) {
		t.Parallel()

		r, d := newRouter(t)
		d.signedIn()

		assert.Equal(t, http.StatusBadRequest, serve(r, request(http.MethodPost, "/admin/api/parts/p1/photos", nil)).Code)
	})
}

func TestDeletePhoto(t *testing.T) {
	t.Parallel()

	r, d := newRouter(t)
	d.signedIn()
	d.admin.On("DeletePhoto", mock.Anything, staff, "https://cdn.example.com/a.jpg").Return(nil).Once()

	rec := serve(r, request(http.MethodDelete, "/admin/api/photos", strings.NewReader(`{"url":"https://cdn.example.com/a.jpg"}`)))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
