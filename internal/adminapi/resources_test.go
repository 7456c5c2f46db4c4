package adminapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bestxiangest/Goods-Trading-Center/pkg/model"
)

func TestValidationSkipsNetwork(t *testing.T) {
	var calls atomic.Int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	})
	ctx := context.Background()
	zero := 0.0

	tests := []struct {
		name string
		call func() error
		msg  string
	}{
		{"user missing fields", func() error {
			_, err := c.RegisterUser(ctx, model.NewUser{Username: "bob"})
			return err
		}, model.MsgRequiredFields},
		{"user bad email", func() error {
			_, err := c.RegisterUser(ctx, model.NewUser{Username: "bob", Email: "bob@", Password: "secret1", Address: "x"})
			return err
		}, model.MsgInvalidEmail},
		{"user short password", func() error {
			_, err := c.RegisterUser(ctx, model.NewUser{Username: "bob", Email: "bob@a.cn", Password: "123", Address: "x"})
			return err
		}, model.MsgShortPassword},
		{"item zero price", func() error {
			_, err := c.CreateItem(ctx, model.ItemInput{Title: "t", Description: "d", CategoryID: 1, Condition: model.ConditionGood, Price: &zero, ImageURLs: []string{"/a.png"}})
			return err
		}, model.MsgNonPositive},
		{"item no images", func() error {
			_, err := c.UpdateItem(ctx, 3, model.ItemInput{Title: "t", Description: "d", CategoryID: 1, Condition: model.ConditionGood})
			return err
		}, model.MsgNoImages},
		{"category blank", func() error {
			_, err := c.CreateCategory(ctx, model.CategoryInput{Name: "  "})
			return err
		}, model.MsgCategoryName},
		{"request parties", func() error {
			_, err := c.CreateRequestAdmin(ctx, model.NewTradeRequest{ItemID: 1})
			return err
		}, model.MsgRequestParties},
		{"request empty update", func() error {
			_, err := c.UpdateRequestAdmin(ctx, 1, model.TradeRequestUpdate{})
			return err
		}, model.MsgEmptyUpdate},
		{"request unknown status", func() error {
			_, err := c.ChangeRequestStatus(ctx, 1, "shipped")
			return err
		}, model.MsgUnknownStatus},
		{"upload bad extension", func() error {
			_, err := c.UploadImage(ctx, "notes.txt", strings.NewReader("x"))
			return err
		}, "文件格式不支持"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			var vErr *model.ValidationError
			require.True(t, errors.As(err, &vErr), "got %v", err)
			assert.Equal(t, tt.msg, vErr.Message)
		})
	}
	assert.Zero(t, calls.Load())
}

func TestRegisterUserSendsNormalizedBody(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/users/register", r.URL.Path)
		var body model.NewUser
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "bob", body.Username)
		assert.Equal(t, "bob@example.com", body.Email)
		writeEnvelope(w, http.StatusCreated, "注册成功", map[string]any{"user_id": 9, "username": "bob"})
	})

	u, err := c.RegisterUser(context.Background(), model.NewUser{
		Username: " bob ", Email: "bob@example.com ", Password: "secret1", Address: "宿舍 3",
	})
	require.NoError(t, err)
	assert.Equal(t, 9, u.UserID)
}

func TestDeleteItemPendingRequests(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/items/5", r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"message":"cannot delete"}`)
	})

	err := c.DeleteItem(context.Background(), 5)
	require.Error(t, err)
	var apiErr *model.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, model.KindPendingRequests, apiErr.Kind)
	assert.Equal(t, "该物品还有待处理的请求，无法删除", apiErr.FriendlyMessage())
}

func TestDeleteCategoryDomainKinds(t *testing.T) {
	tests := []struct {
		msg  string
		kind model.ErrorKind
	}{
		{"该分类下还有子分类，无法删除", model.KindHasChildren},
		{"该分类下还有物品，无法删除", model.KindHasItems},
	}
	for _, tt := range tests {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"message": tt.msg})
		})
		err := c.DeleteCategory(context.Background(), 2)
		assert.Equal(t, tt.kind, model.KindOf(err), tt.msg)
	}
}

func TestDeleteUserDomainKinds(t *testing.T) {
	tests := []struct {
		msg  string
		kind model.ErrorKind
	}{
		{"不能删除管理员用户", model.KindAdminUser},
		{"不能删除自己的账户", model.KindSelfDelete},
		{"该用户还有未完成的交易，无法删除", model.KindPendingTrades},
		{"该分类下还有物品，无法删除", model.KindHTTP},
		{"数据库错误", model.KindHTTP},
	}
	for _, tt := range tests {
		c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"message": tt.msg})
		})
		err := c.DeleteUser(context.Background(), 4)
		assert.Equal(t, tt.kind, model.KindOf(err), tt.msg)
	}
}

func TestToggleUserStatus(t *testing.T) {
	var path, method string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		path, method = r.URL.Path, r.Method
		writeEnvelope(w, http.StatusOK, "ok", nil)
	})

	require.NoError(t, c.ToggleUserStatus(context.Background(), 12))
	assert.Equal(t, "/users/12/toggle-status", path)
	assert.Equal(t, http.MethodPost, method)
}

func TestVerifyAdmin(t *testing.T) {
	var admin atomic.Bool
	admin.Store(true)
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, "ok", map[string]any{"user_id": 1, "username": "root", "is_admin": admin.Load()})
	})

	u, err := c.VerifyAdmin(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "root", u.Username)

	admin.Store(false)
	_, err = c.VerifyAdmin(context.Background())
	assert.ErrorIs(t, err, ErrNotAdmin)
}

func TestCountRequestsPending(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/requests/count", r.URL.Path)
		assert.Equal(t, "pending", r.URL.Query().Get("status"))
		writeEnvelope(w, http.StatusOK, "ok", model.Count{Count: 4})
	})

	n, err := c.CountRequests(context.Background(), model.RequestPending)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestCategoryTree(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/categories/tree", r.URL.Path)
		io.WriteString(w, `{"code":200,"message":"ok","data":[
			{"category_id":1,"name":"电子产品","parent_id":null,"children":[{"category_id":3,"name":"手机","parent_id":1}]},
			{"category_id":2,"name":"图书","parent_id":null}
		]}`)
	})

	tree, err := c.CategoryTree(context.Background())
	require.NoError(t, err)
	opts := model.FlattenCategories(tree)
	require.Len(t, opts, 3)
	assert.Equal(t, "电子产品 > 手机", opts[1].Label)
}

func TestDashboardEndpoints(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/today":
			writeEnvelope(w, http.StatusOK, "ok", model.TodayStats{NewUsers: 1, NewItems: 2})
		case "/user-registration-trend":
			writeEnvelope(w, http.StatusOK, "ok", []model.TrendPoint{{Date: "2024-05-01", Count: 3}})
		case "/item-category-distribution":
			writeEnvelope(w, http.StatusOK, "ok", []model.CategoryShare{{Category: "图书", Count: 5}})
		default:
			http.NotFound(w, r)
		}
	})
	ctx := context.Background()

	today, err := c.Today(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, today.NewItems)

	trend, err := c.RegistrationTrend(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.TrendPoint{{Date: "2024-05-01", Count: 3}}, trend)

	dist, err := c.CategoryDistribution(ctx)
	require.NoError(t, err)
	assert.Equal(t, "图书", dist[0].Category)
}

func TestUploadImage(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/upload/image", r.URL.Path)
		assert.True(t, strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data"))
		f, hdr, err := r.FormFile("image")
		require.NoError(t, err)
		defer f.Close()
		data, _ := io.ReadAll(f)
		assert.Equal(t, "cover.png", hdr.Filename)
		assert.Equal(t, "PNGDATA", string(data))
		writeEnvelope(w, http.StatusOK, "图片上传成功", map[string]string{"image_url": "/static/uploads/items/abc.png"})
	})

	url, err := c.UploadImage(context.Background(), "/tmp/cover.png", strings.NewReader("PNGDATA"))
	require.NoError(t, err)
	assert.Equal(t, "/static/uploads/items/abc.png", url)
}

func TestAdminLogin(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/admin/login", r.URL.Path)
		var creds AdminCredentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		if creds.Password != "right" {
			w.WriteHeader(http.StatusUnauthorized)
			io.WriteString(w, `{"code":401,"message":"用户名或密码错误"}`)
			return
		}
		writeEnvelope(w, http.StatusOK, "管理员登录成功", map[string]any{"user_id": 1, "username": creds.Username, "is_admin": true})
	})
	ctx := context.Background()

	u, err := c.AdminLogin(ctx, " admin ", "right")
	require.NoError(t, err)
	assert.Equal(t, "admin", u.Username)

	_, err = c.AdminLogin(ctx, "admin", "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "用户名或密码错误")

	_, err = c.AdminLogin(ctx, "", "")
	assert.Equal(t, model.KindValidation, model.KindOf(err))
}
