package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/samandr77/microservices/dashboard/internal/entity"
	"github.com/samandr77/microservices/dashboard/internal/service"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../mocks/handler.go -package=mocks -typed

const (
	uploadFormField   = "file"
	multipartMemory   = 8 << 20
	multipartOverhead = 1 << 20
)

type Service interface {
	RoleConfig(role entity.Role) entity.RoleConfig
	Folders(ctx context.Context, role entity.Role) []entity.FolderSummary
	ResolveFolder(role entity.Role, slug string) (entity.Folder, error)
	FolderFiles(ctx context.Context, folder entity.Folder, filter entity.FilesFilter) ([]entity.FileRecord, error)
	Upload(ctx context.Context, user entity.User, folder entity.Folder, c service.Candidate) (entity.FileRecord, error)
	Remove(ctx context.Context, folder entity.Folder, id uuid.UUID) (entity.FileRecord, error)
	Content(ctx context.Context, folder entity.Folder, id uuid.UUID) (entity.Blob, error)
	Dashboard(ctx context.Context, role entity.Role) entity.DashboardStats
}

type Sessions interface {
	Login(ctx context.Context, email, password string) (entity.User, error)
	Logout(ctx context.Context) error
	User() (entity.User, bool)
}

// @title Fakultas Dashboard API
// @version 1.0
// @description Dashboard dokumen fakultas per peran pengguna.
// @BasePath /api

type Handler struct {
	s        Service
	sessions Sessions
}

func NewHandler(s Service, sessions Sessions) *Handler {
	return &Handler{
		s:        s,
		sessions: sessions,
	}
}

// Health godoc
// @Summary      Cek status layanan
// @Tags         health
// @Success      200 {string} string "Layanan berjalan!"
// @Failure      500 {object} ResponseError "Layanan tidak berjalan"
// @Router       /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, err := w.Write([]byte("Layanan berjalan!\n"))
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "Layanan tidak berjalan!")
	}
}

type RedirectResponse struct {
	Redirect string `json:"redirect"`
}

// Home godoc
// @Summary      Halaman awal
// @Description  Mengarahkan ke dashboard pengguna yang login atau ke halaman login
// @Tags         session
// @Produce      json
// @Success      200 {object} RedirectResponse
// @Router       / [get]
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	redirect := loginPath
	if user, ok := h.sessions.User(); ok {
		redirect = user.Role.HomePath()
	}

	SendJSON(ctx, w, http.StatusOK, RedirectResponse{Redirect: redirect})
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SessionResponse struct {
	User     entity.User `json:"user"`
	RoleName string      `json:"roleName"`
	Redirect string      `json:"redirect"`
}

func sessionResponse(user entity.User) SessionResponse {
	return SessionResponse{
		User:     user,
		RoleName: user.Role.DisplayName(),
		Redirect: user.Role.HomePath(),
	}
}

// Login godoc
// @Summary      Login
// @Description  Masuk dengan email dan password, lalu diarahkan ke dashboard peran
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Email dan password"
// @Success      200 {object} SessionResponse
// @Failure      400 {object} ResponseError "Permintaan tidak valid"
// @Failure      401 {object} ResponseError "Password salah"
// @Failure      404 {object} ResponseError "Email tidak ditemukan"
// @Failure      500 {object} ResponseError "Kesalahan server"
// @Router       /login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req LoginRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, fmt.Errorf("%w: %w", entity.ErrIncorrectRequestBody, err), "Permintaan tidak valid")
		return
	}

	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		SendErr(ctx, w, http.StatusBadRequest, entity.ErrIncorrectRequestBody, "Email dan password wajib diisi")
		return
	}

	user, err := h.sessions.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, entity.ErrInvalidEmail) {
			SendErr(ctx, w, http.StatusNotFound, err, "Email tidak ditemukan")
			return
		}

		if errors.Is(err, entity.ErrInvalidPassword) {
			SendErr(ctx, w, http.StatusUnauthorized, err, "Password salah")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "Terjadi kesalahan saat login")

		return
	}

	SendJSON(ctx, w, http.StatusOK, sessionResponse(user))
}

// Logout godoc
// @Summary      Logout
// @Tags         session
// @Produce      json
// @Success      200 {object} RedirectResponse
// @Failure      500 {object} ResponseError "Kesalahan server"
// @Router       /logout [post]
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.sessions.Logout(ctx); err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)
		return
	}

	SendJSON(ctx, w, http.StatusOK, RedirectResponse{Redirect: loginPath})
}

// Session godoc
// @Summary      Pengguna aktif
// @Tags         session
// @Produce      json
// @Success      200 {object} SessionResponse
// @Failure      401 {object} ResponseError "Belum login"
// @Router       /session [get]
func (h *Handler) Session(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := h.sessions.User()
	if !ok {
		SendErrRedirect(ctx, w, http.StatusUnauthorized, entity.ErrUnauthorized, "Belum login", loginPath)
		return
	}

	SendJSON(ctx, w, http.StatusOK, sessionResponse(user))
}

type FileResponse struct {
	entity.FileRecord
	SizeLabel string      `json:"sizeLabel"`
	Icon      entity.Icon `json:"icon"`
}

func fileToAPI(f entity.FileRecord) FileResponse {
	return FileResponse{
		FileRecord: f,
		SizeLabel:  service.FormatFileSize(f.Size),
		Icon:       f.Icon(),
	}
}

func filesToAPI(files []entity.FileRecord) []FileResponse {
	res := make([]FileResponse, 0, len(files))

	for _, f := range files {
		res = append(res, fileToAPI(f))
	}

	return res
}

type StatsResponse struct {
	TotalFiles    int             `json:"totalFiles"`
	TotalFolders  int             `json:"totalFolders"`
	StorageUsedMB decimal.Decimal `json:"storageUsed"`
	RecentUploads []FileResponse  `json:"recentUploads"`
}

type DashboardResponse struct {
	User     entity.User       `json:"user"`
	RoleName string            `json:"roleName"`
	Config   entity.RoleConfig `json:"config"`
	Folders  []FolderResponse  `json:"folders"`
	Stats    StatsResponse     `json:"stats"`
}

// Dashboard godoc
// @Summary      Dashboard peran
// @Description  Konfigurasi peran, folder dan statistik dokumen
// @Tags         dashboard
// @Produce      json
// @Param        role path string true "Peran" Enums(dosen, tendik, wakil-dekan-1, wakil-dekan-2, wakil-dekan-3)
// @Success      200 {object} DashboardResponse
// @Failure      401 {object} ResponseError "Belum login"
// @Failure      403 {object} ResponseError "Peran tidak sesuai"
// @Router       /{role} [get]
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := entity.UserFromContext(ctx)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)
		return
	}

	stats := h.s.Dashboard(ctx, user.Role)

	SendJSON(ctx, w, http.StatusOK, DashboardResponse{
		User:     user,
		RoleName: user.Role.DisplayName(),
		Config:   h.s.RoleConfig(user.Role),
		Folders:  foldersToAPI(h.s.Folders(ctx, user.Role)),
		Stats: StatsResponse{
			TotalFiles:    stats.TotalFiles,
			TotalFolders:  stats.TotalFolders,
			StorageUsedMB: stats.StorageUsedMB,
			RecentUploads: filesToAPI(stats.RecentUploads),
		},
	})
}

type FolderResponse struct {
	entity.FolderSummary
	TotalSizeLabel string `json:"totalSizeLabel"`
}

type FoldersResponse struct {
	Role    entity.Role      `json:"role"`
	Folders []FolderResponse `json:"folders"`
}

func foldersToAPI(folders []entity.FolderSummary) []FolderResponse {
	res := make([]FolderResponse, 0, len(folders))

	for _, f := range folders {
		res = append(res, FolderResponse{
			FolderSummary:  f,
			TotalSizeLabel: service.FormatFileSize(f.TotalSize),
		})
	}

	return res
}

// Folders godoc
// @Summary      Daftar folder
// @Description  Folder peran beserta jumlah file dan total ukurannya
// @Tags         folders
// @Produce      json
// @Param        role path string true "Peran"
// @Success      200 {object} FoldersResponse
// @Failure      401 {object} ResponseError "Belum login"
// @Failure      403 {object} ResponseError "Peran tidak sesuai"
// @Router       /{role}/dokumen [get]
func (h *Handler) Folders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := entity.UserFromContext(ctx)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)
		return
	}

	SendJSON(ctx, w, http.StatusOK, FoldersResponse{
		Role:    user.Role,
		Folders: foldersToAPI(h.s.Folders(ctx, user.Role)),
	})
}

type FolderFilesResponse struct {
	Folder entity.Folder  `json:"folder"`
	Total  int            `json:"total"`
	Files  []FileResponse `json:"files"`
}

// FolderFiles godoc
// @Summary      Isi folder
// @Description  Daftar file dalam folder, dengan pencarian nama dan pengurutan
// @Tags         folders
// @Produce      json
// @Param        role path string true "Peran"
// @Param        folder path string true "Slug folder, misalnya materi-kuliah"
// @Param        q query string false "Cari nama file"
// @Param        sortBy query string false "Urutkan menurut" Enums(name, uploaded_at, size)
// @Param        orderBy query string false "Arah urutan" Enums(asc, desc)
// @Success      200 {object} FolderFilesResponse
// @Failure      400 {object} ResponseError "Parameter tidak valid"
// @Failure      404 {object} ResponseError "Folder tidak ditemukan"
// @Router       /{role}/dokumen/{folder} [get]
func (h *Handler) FolderFiles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	folder, ok := h.folder(w, r)
	if !ok {
		return
	}

	files, err := h.s.FolderFiles(ctx, folder, parseFilesFilter(r.URL.Query()))
	if err != nil {
		if errors.Is(err, entity.ErrIncorrectRequestBody) {
			SendErr(ctx, w, http.StatusBadRequest, err, "Parameter tidak valid")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)

		return
	}

	SendJSON(ctx, w, http.StatusOK, FolderFilesResponse{
		Folder: folder,
		Total:  len(files),
		Files:  filesToAPI(files),
	})
}

func parseFilesFilter(q url.Values) entity.FilesFilter {
	filter := entity.FilesFilter{
		Query:   q.Get("q"),
		SortBy:  entity.FilesSortBy(q.Get("sortBy")),
		OrderBy: entity.OrderBy(strings.ToLower(q.Get("orderBy"))),
	}

	if filter.SortBy != "" && filter.OrderBy == "" {
		filter.OrderBy = entity.ASC
	}

	return filter
}

// UploadFile godoc
// @Summary      Unggah file
// @Description  Ukuran diperiksa lebih dulu, lalu tipe file
// @Tags         files
// @Accept       multipart/form-data
// @Produce      json
// @Param        role path string true "Peran"
// @Param        folder path string true "Slug folder"
// @Param        file formData file true "File"
// @Success      201 {object} FileResponse
// @Failure      400 {object} ResponseError "Permintaan tidak valid"
// @Failure      404 {object} ResponseError "Folder tidak ditemukan"
// @Failure      413 {object} ResponseError "File terlalu besar"
// @Failure      415 {object} ResponseError "Tipe file tidak diizinkan"
// @Router       /{role}/dokumen/{folder}/files [post]
func (h *Handler) UploadFile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := entity.UserFromContext(ctx)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)
		return
	}

	folder, ok := h.folder(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, folder.MaxFileSizeBytes()+multipartOverhead)

	err = r.ParseMultipartForm(multipartMemory)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			SendErr(ctx, w, http.StatusRequestEntityTooLarge, err, uploadTooLargeText(folder))
			return
		}

		SendErr(ctx, w, http.StatusBadRequest, fmt.Errorf("%w: %w", entity.ErrIncorrectRequestBody, err), "Permintaan tidak valid")

		return
	}
	defer r.MultipartForm.RemoveAll() //nolint:errcheck

	file, header, err := r.FormFile(uploadFormField)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, fmt.Errorf("%w: %w", entity.ErrIncorrectRequestBody, err), "File wajib diunggah")
		return
	}
	defer file.Close()

	record, err := h.s.Upload(ctx, user, folder, service.Candidate{
		Name:    header.Filename,
		Size:    header.Size,
		Content: file,
	})
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrTooLarge):
			SendErr(ctx, w, http.StatusRequestEntityTooLarge, err, uploadTooLargeText(folder))
		case errors.Is(err, entity.ErrDisallowedType):
			SendErr(ctx, w, http.StatusUnsupportedMediaType, err,
				"Tipe file tidak diizinkan. Hanya: "+strings.Join(folder.AllowedFileTypes, ", "))
		case errors.Is(err, entity.ErrIncorrectRequestBody):
			SendErr(ctx, w, http.StatusBadRequest, err, "Permintaan tidak valid")
		case errors.Is(err, entity.ErrForbidden):
			SendErr(ctx, w, http.StatusForbidden, err, "Anda tidak memiliki akses ke folder ini")
		default:
			SendErr(ctx, w, http.StatusInternalServerError, err, "Gagal mengunggah file")
		}

		return
	}

	SendJSON(ctx, w, http.StatusCreated, fileToAPI(record))
}

func uploadTooLargeText(folder entity.Folder) string {
	return fmt.Sprintf("Ukuran file melebihi batas maksimal %dMB", folder.MaxFileSize)
}

type MessageResponse struct {
	Message string `json:"message"`
}

// RemoveFile godoc
// @Summary      Hapus file
// @Tags         files
// @Produce      json
// @Param        role path string true "Peran"
// @Param        folder path string true "Slug folder"
// @Param        id path string true "ID file"
// @Success      200 {object} MessageResponse
// @Failure      400 {object} ResponseError "ID tidak valid"
// @Failure      404 {object} ResponseError "File tidak ditemukan"
// @Router       /{role}/dokumen/{folder}/files/{id} [delete]
func (h *Handler) RemoveFile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	folder, ok := h.folder(w, r)
	if !ok {
		return
	}

	id, ok := fileID(w, r)
	if !ok {
		return
	}

	removed, err := h.s.Remove(ctx, folder, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "File tidak ditemukan")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, "Gagal menghapus file")

		return
	}

	SendJSON(ctx, w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("File %s berhasil dihapus", removed.Name),
	})
}

// FileContent godoc
// @Summary      Unduh file
// @Description  Hanya file yang diunggah dan belum kedaluwarsa yang memiliki isi
// @Tags         files
// @Produce      application/octet-stream
// @Param        role path string true "Peran"
// @Param        folder path string true "Slug folder"
// @Param        id path string true "ID file"
// @Success      200 {file} binary "Isi file"
// @Failure      400 {object} ResponseError "ID tidak valid"
// @Failure      404 {object} ResponseError "File tidak ditemukan"
// @Router       /{role}/dokumen/{folder}/files/{id}/content [get]
func (h *Handler) FileContent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	folder, ok := h.folder(w, r)
	if !ok {
		return
	}

	id, ok := fileID(w, r)
	if !ok {
		return
	}

	blob, err := h.s.Content(ctx, folder, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendErr(ctx, w, http.StatusNotFound, err, "File tidak ditemukan")
			return
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)

		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", url.PathEscape(blob.Name)))

	http.ServeContent(w, r, blob.Name, blob.CreatedAt, bytes.NewReader(blob.Data))
}

// folder resolves the {folder} slug for the session user. It writes the error
// response itself when the slug is unknown.
func (h *Handler) folder(w http.ResponseWriter, r *http.Request) (entity.Folder, bool) {
	ctx := r.Context()

	user, err := entity.UserFromContext(ctx)
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)
		return entity.Folder{}, false
	}

	folder, err := h.s.ResolveFolder(user.Role, chi.URLParam(r, "folder"))
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendErrRedirect(ctx, w, http.StatusNotFound, err, "Folder tidak ditemukan", user.Role.FoldersPath())
			return entity.Folder{}, false
		}

		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalText)

		return entity.Folder{}, false
	}

	return folder, true
}

func fileID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil || id.IsNil() {
		SendErr(r.Context(), w, http.StatusBadRequest, fmt.Errorf("%w: file id", entity.ErrIncorrectRequestBody), "ID file tidak valid")
		return uuid.Nil, false
	}

	return id, true
}
