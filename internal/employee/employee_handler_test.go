package employee_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/BibekanandaBariki/technnext-hrms/internal/employee"
	employeeerrors "github.com/BibekanandaBariki/technnext-hrms/internal/employee/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Meta  json.RawMessage `json:"meta"`
	Error json.RawMessage `json:"error"`
}

func mustDecodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakeEmployeeService struct {
	createFn     func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	getAllFn     func(ctx context.Context, page, limit int) ([]employee.EmployeeResponse, int64, error)
	getOptionsFn func(ctx context.Context) ([]employee.EmployeeOption, error)
	getByIDFn    func(ctx context.Context, id string) (employee.EmployeeResponse, error)
	getMeFn      func(ctx context.Context, userID string) (employee.EmployeeResponse, error)
	updateFn     func(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	deleteFn     func(ctx context.Context, id string) error
}

func (f *fakeEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.createFn(ctx, req)
}
func (f *fakeEmployeeService) GetAll(ctx context.Context, page, limit int) ([]employee.EmployeeResponse, int64, error) {
	return f.getAllFn(ctx, page, limit)
}
func (f *fakeEmployeeService) GetOptions(ctx context.Context) ([]employee.EmployeeOption, error) {
	return f.getOptionsFn(ctx)
}
func (f *fakeEmployeeService) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeEmployeeService) GetMe(ctx context.Context, userID string) (employee.EmployeeResponse, error) {
	return f.getMeFn(ctx, userID)
}
func (f *fakeEmployeeService) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.updateFn(ctx, id, req)
}
func (f *fakeEmployeeService) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

func TestEmployeeHandler_Create(t *testing.T) {
	designationID := uuid.New().String()

	svc := &fakeEmployeeService{
		createFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
			assert.Equal(t, "asha.verma@technnext.com", req.Email)
			assert.Equal(t, designationID, req.DesignationID)
			return employee.EmployeeResponse{
				ID:           uuid.New().String(),
				EmployeeCode: "EMP-000042",
				Email:        req.Email,
				Status:       employee.StatusOnboarding,
			}, nil
		},
	}

	h := employee.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"first_name":"Asha","last_name":"Verma","email":"asha.verma@technnext.com","designation_id":"` + designationID + `","date_of_joining":"2026-04-01"}`
	c.Request = httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)
	assert.Contains(t, string(env.Data), "EMP-000042")
}

func TestEmployeeHandler_Create_MissingFields(t *testing.T) {
	svc := &fakeEmployeeService{
		createFn: func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
			t.Fatal("service must not run on an invalid body")
			return employee.EmployeeResponse{}, nil
		},
	}

	h := employee.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(http.MethodPost, "/employees", strings.NewReader(`{"first_name":"Asha"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
}

func TestEmployeeHandler_GetAll_Pagination(t *testing.T) {
	svc := &fakeEmployeeService{
		getAllFn: func(ctx context.Context, page, limit int) ([]employee.EmployeeResponse, int64, error) {
			assert.Equal(t, 2, page)
			assert.Equal(t, 10, limit)
			return []employee.EmployeeResponse{{ID: uuid.New().String()}}, 25, nil
		},
	}

	h := employee.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/employees?page=2&limit=10", nil)

	h.GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)
	assert.Contains(t, string(env.Meta), `"total":25`)
	assert.Contains(t, string(env.Meta), `"totalPages":3`)
}

func TestEmployeeHandler_GetByID_NotFound(t *testing.T) {
	svc := &fakeEmployeeService{
		getByIDFn: func(ctx context.Context, id string) (employee.EmployeeResponse, error) {
			return employee.EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		},
	}

	h := employee.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/employees/x", nil)
	c.Params = gin.Params{{Key: "id", Value: uuid.New().String()}}

	h.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
}

func TestEmployeeHandler_GetMe(t *testing.T) {
	userID := uuid.New().String()

	svc := &fakeEmployeeService{
		getMeFn: func(ctx context.Context, uid string) (employee.EmployeeResponse, error) {
			assert.Equal(t, userID, uid)
			return employee.EmployeeResponse{ID: uuid.New().String(), EmployeeCode: "EMP-000007"}, nil
		},
	}

	h := employee.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/employees/me", nil)
	c.Set("user_id", userID)

	h.GetMe(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "EMP-000007")
}

func TestEmployeeHandler_Delete(t *testing.T) {
	id := uuid.New().String()
	called := false

	svc := &fakeEmployeeService{
		deleteFn: func(ctx context.Context, gotID string) error {
			called = true
			assert.Equal(t, id, gotID)
			return nil
		},
	}

	h := employee.NewHandler(svc)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodDelete, "/employees/"+id, nil)
	c.Params = gin.Params{{Key: "id", Value: id}}

	h.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, called)
}
