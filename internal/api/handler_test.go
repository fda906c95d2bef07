package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/dashboard/internal/api"
	"github.com/samandr77/microservices/dashboard/internal/entity"
	"github.com/samandr77/microservices/dashboard/internal/mocks"
	"github.com/samandr77/microservices/dashboard/internal/repository"
	"github.com/samandr77/microservices/dashboard/internal/service"
	"github.com/samandr77/microservices/dashboard/pkg/broker"
)

const dosenEmail = "ahmad.wijaya@university.ac.id"

type TestAPI struct {
	t   *testing.T
	srv *httptest.Server
}

func NewTestAPI(t *testing.T) *TestAPI {
	t.Helper()

	files := repository.NewFileRepository(repository.SeedFiles()...)
	s := service.New(files, repository.NewBlobRepository(), broker.NopProducer{}, 0, 0)

	sessions, err := service.NewSession(repository.NewUserRepository(), repository.NewMemorySlots(), "test-secret", 0)
	require.NoError(t, err)

	return newTestAPI(t, s, sessions)
}

func newTestAPI(t *testing.T, s api.Service, sessions api.Sessions) *TestAPI {
	t.Helper()

	router := api.NewRouter(api.NewHandler(s, sessions), api.NewMiddleware(sessions))

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &TestAPI{t: t, srv: srv}
}

func (c *TestAPI) do(method, path string, body io.Reader, contentType string) (int, []byte) {
	c.t.Helper()

	req, err := http.NewRequestWithContext(context.Background(), method, c.srv.URL+"/api"+path, body)
	require.NoError(c.t, err)

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(c.t, err)

	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	require.NoError(c.t, err)

	return resp.StatusCode, b
}

func (c *TestAPI) json(method, path string, in, out any) int {
	c.t.Helper()

	var body io.Reader

	if in != nil {
		b, err := json.Marshal(in)
		require.NoError(c.t, err)

		body = bytes.NewReader(b)
	}

	code, b := c.do(method, path, body, "application/json")

	if out != nil {
		require.NoError(c.t, json.Unmarshal(b, out), string(b))
	}

	return code
}

func (c *TestAPI) login(email string) {
	c.t.Helper()

	code := c.json(http.MethodPost, "/login", api.LoginRequest{Email: email, Password: service.DefaultPassword}, nil)
	require.Equal(c.t, http.StatusOK, code)
}

func (c *TestAPI) upload(path, name string, data []byte, out any) int {
	c.t.Helper()

	var buf bytes.Buffer

	mw := multipart.NewWriter(&buf)

	fw, err := mw.CreateFormFile("file", name)
	require.NoError(c.t, err)

	_, err = fw.Write(data)
	require.NoError(c.t, err)
	require.NoError(c.t, mw.Close())

	code, b := c.do(http.MethodPost, path, &buf, mw.FormDataContentType())
	require.NoError(c.t, json.Unmarshal(b, out), string(b))

	return code
}

func TestHandler_Login(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		req      api.LoginRequest
		wantCode int
		wantMsg  string
	}{
		{
			name:     "unknown email",
			req:      api.LoginRequest{Email: "nobody@university.ac.id", Password: service.DefaultPassword},
			wantCode: http.StatusNotFound,
			wantMsg:  "Email tidak ditemukan",
		},
		{
			name:     "wrong password",
			req:      api.LoginRequest{Email: dosenEmail, Password: "salah"},
			wantCode: http.StatusUnauthorized,
			wantMsg:  "Password salah",
		},
		{
			name:     "missing fields",
			req:      api.LoginRequest{Email: dosenEmail},
			wantCode: http.StatusBadRequest,
			wantMsg:  "Email dan password wajib diisi",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := NewTestAPI(t)

			var resp api.ResponseError

			code := c.json(http.MethodPost, "/login", tt.req, &resp)
			require.Equal(t, tt.wantCode, code)
			require.Equal(t, tt.wantMsg, resp.Message)

			code = c.json(http.MethodGet, "/session", nil, nil)
			require.Equal(t, http.StatusUnauthorized, code)
		})
	}
}

func TestHandler_SessionLifecycle(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	c := NewTestAPI(t)

	var home api.RedirectResponse
	r.Equal(http.StatusOK, c.json(http.MethodGet, "/", nil, &home))
	r.Equal("/login", home.Redirect)

	var login api.SessionResponse
	r.Equal(http.StatusOK, c.json(http.MethodPost, "/login", api.LoginRequest{
		Email:    "siti.nurhaliza@university.ac.id",
		Password: service.DefaultPassword,
	}, &login))
	r.Equal(entity.RoleTendik, login.User.Role)
	r.Equal("/tendik", login.Redirect)
	r.Equal("Tenaga Kependidikan", login.RoleName)

	var current api.SessionResponse
	r.Equal(http.StatusOK, c.json(http.MethodGet, "/session", nil, &current))
	r.Equal(login, current)

	r.Equal(http.StatusOK, c.json(http.MethodGet, "/", nil, &home))
	r.Equal("/tendik", home.Redirect)

	r.Equal(http.StatusOK, c.json(http.MethodPost, "/logout", nil, nil))
	r.Equal(http.StatusOK, c.json(http.MethodPost, "/logout", nil, nil))
	r.Equal(http.StatusUnauthorized, c.json(http.MethodGet, "/session", nil, nil))
}

func TestHandler_RequireRole(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	c := NewTestAPI(t)

	var resp api.ResponseError
	r.Equal(http.StatusUnauthorized, c.json(http.MethodGet, "/dosen", nil, &resp))
	r.Equal("/login", resp.Redirect)

	c.login(dosenEmail)

	for _, path := range []string{"/tendik", "/wakil-dekan-1/dokumen", "/rektor", "/tendik/dokumen/keuangan"} {
		resp = api.ResponseError{}
		r.Equal(http.StatusForbidden, c.json(http.MethodGet, path, nil, &resp), path)
		r.Equal("/dosen", resp.Redirect, path)
	}

	var dashboard api.DashboardResponse
	r.Equal(http.StatusOK, c.json(http.MethodGet, "/dosen", nil, &dashboard))
	r.Equal(entity.RoleDosen, dashboard.Config.Role)
	r.Len(dashboard.Folders, 4)
	r.Equal("penelitian", dashboard.Folders[0].ID)
	r.Equal(1, dashboard.Folders[0].FileCount)
	r.Equal(4, dashboard.Stats.TotalFolders)
	r.Equal(2, dashboard.Stats.TotalFiles)
	r.Equal("17", dashboard.Stats.StorageUsedMB.String())
	r.Len(dashboard.Stats.RecentUploads, 2)
	r.Equal("1.95 MB", dashboard.Stats.RecentUploads[0].SizeLabel)
}

func TestHandler_FolderScenario(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	c := NewTestAPI(t)
	c.login(dosenEmail)

	var folders api.FoldersResponse
	r.Equal(http.StatusOK, c.json(http.MethodGet, "/dosen/dokumen", nil, &folders))
	r.Len(folders.Folders, 4)
	r.Equal("/dosen/dokumen/materi-kuliah", folders.Folders[2].Path)
	r.Equal(1, folders.Folders[0].FileCount)
	r.Equal(int64(2048576), folders.Folders[0].TotalSize)
	r.Equal("1.95 MB", folders.Folders[0].TotalSizeLabel)
	r.Equal(1, folders.Folders[2].FileCount)

	var before api.FolderFilesResponse
	r.Equal(http.StatusOK, c.json(http.MethodGet, "/dosen/dokumen/materi-kuliah", nil, &before))
	r.Equal("Materi Kuliah", before.Folder.Name)

	var uploaded api.FileResponse
	r.Equal(http.StatusCreated, c.upload("/dosen/dokumen/materi-kuliah/files", "slides.pptx", []byte("slides"), &uploaded))
	r.Equal("slides.pptx", uploaded.Name)
	r.Equal("materi-kuliah", uploaded.FolderID)
	r.Equal(entity.IconPresentation, uploaded.Icon)

	var after api.FolderFilesResponse
	r.Equal(http.StatusOK, c.json(http.MethodGet, "/dosen/dokumen/materi-kuliah", nil, &after))
	r.Equal(before.Total+1, after.Total)

	folders = api.FoldersResponse{}
	r.Equal(http.StatusOK, c.json(http.MethodGet, "/dosen/dokumen", nil, &folders))
	r.Equal(2, folders.Folders[2].FileCount)
	r.Equal(int64(15728640+len("slides")), folders.Folders[2].TotalSize)
	r.Equal("15 MB", folders.Folders[2].TotalSizeLabel)
	r.Zero(folders.Folders[3].FileCount)
	r.Equal("0 Bytes", folders.Folders[3].TotalSizeLabel)

	var found api.FolderFilesResponse
	r.Equal(http.StatusOK, c.json(http.MethodGet, "/dosen/dokumen/materi-kuliah?q=SLIDES", nil, &found))
	r.Equal(1, found.Total)
	r.Equal(uploaded.ID, found.Files[0].ID)

	code, content := c.do(http.MethodGet, "/dosen/dokumen/materi-kuliah/files/"+uploaded.ID.String()+"/content", nil, "")
	r.Equal(http.StatusOK, code)
	r.Equal([]byte("slides"), content)

	var msg api.MessageResponse
	r.Equal(http.StatusOK, c.json(http.MethodDelete, "/dosen/dokumen/materi-kuliah/files/"+uploaded.ID.String(), nil, &msg))
	r.Contains(msg.Message, "slides.pptx")

	r.Equal(http.StatusOK, c.json(http.MethodGet, "/dosen/dokumen/materi-kuliah", nil, &after))
	r.Equal(before.Total, after.Total)

	r.Equal(http.StatusNotFound, c.json(http.MethodDelete, "/dosen/dokumen/materi-kuliah/files/"+uploaded.ID.String(), nil, nil))

	code, _ = c.do(http.MethodGet, "/dosen/dokumen/materi-kuliah/files/"+uploaded.ID.String()+"/content", nil, "")
	r.Equal(http.StatusNotFound, code)
}

func TestHandler_FolderErrors(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	c := NewTestAPI(t)
	c.login(dosenEmail)

	var resp api.ResponseError
	r.Equal(http.StatusNotFound, c.json(http.MethodGet, "/dosen/dokumen/keuangan", nil, &resp))
	r.Equal("/dosen/dokumen", resp.Redirect)

	r.Equal(http.StatusBadRequest, c.json(http.MethodGet, "/dosen/dokumen/penelitian?sortBy=owner", nil, nil))
	r.Equal(http.StatusBadRequest, c.json(http.MethodGet, "/dosen/dokumen/penelitian?orderBy=sideways", nil, nil))

	var ordered api.FolderFilesResponse
	r.Equal(http.StatusOK, c.json(http.MethodGet, "/dosen/dokumen/penelitian?orderBy=desc", nil, &ordered))
	r.Equal(1, ordered.Total)
	r.Equal(http.StatusBadRequest, c.json(http.MethodDelete, "/dosen/dokumen/penelitian/files/not-a-uuid", nil, nil))

	resp = api.ResponseError{}
	r.Equal(http.StatusRequestEntityTooLarge,
		c.upload("/dosen/dokumen/publikasi/files", "jurnal.pdf", make([]byte, 5*entity.BytesPerMB+1), &resp))
	r.Equal("Ukuran file melebihi batas maksimal 5MB", resp.Message)

	resp = api.ResponseError{}
	r.Equal(http.StatusUnsupportedMediaType, c.upload("/dosen/dokumen/publikasi/files", "foto.png", []byte("png"), &resp))
	r.Equal("Tipe file tidak diizinkan. Hanya: .pdf, .doc, .docx", resp.Message)

	var files api.FolderFilesResponse
	r.Equal(http.StatusOK, c.json(http.MethodGet, "/dosen/dokumen/publikasi", nil, &files))
	r.Zero(files.Total)
}

func TestHandler_ServiceError(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	ctrl := gomock.NewController(t)
	s := mocks.NewMockService(ctrl)
	sessions := mocks.NewMockSessions(ctrl)

	user := entity.User{ID: "2", Role: entity.RoleTendik}
	folder := entity.GetRoleConfig(entity.RoleTendik).ResolvedFolders()[0]

	sessions.EXPECT().User().Return(user, true)
	s.EXPECT().ResolveFolder(entity.RoleTendik, folder.ID).Return(folder, nil)
	s.EXPECT().FolderFiles(gomock.Any(), folder, entity.FilesFilter{}).Return(nil, errors.New("boom"))

	c := newTestAPI(t, s, sessions)

	var resp api.ResponseError
	r.Equal(http.StatusInternalServerError, c.json(http.MethodGet, "/tendik/dokumen/"+folder.ID, nil, &resp))
	r.Equal("boom", resp.Error)
}
