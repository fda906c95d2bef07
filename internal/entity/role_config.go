package entity

import "slices"

type FolderTemplate struct {
	Name             string   `json:"name"`
	AllowedFileTypes []string `json:"allowedFileTypes"`
	MaxFileSize      int      `json:"maxFileSize"`
	Description      string   `json:"description"`
	Icon             Icon     `json:"icon"`
}

type RoleConfig struct {
	Role        Role             `json:"role"`
	Folders     []FolderTemplate `json:"folders"`
	Permissions []Permission     `json:"permissions"`
	Color       string           `json:"color"`
	Description string           `json:"description"`
}

func (c RoleConfig) Has(p Permission) bool {
	return slices.Contains(c.Permissions, p)
}

var (
	permsContributor = []Permission{PermissionRead, PermissionWrite, PermissionUpload}
	permsManager     = []Permission{PermissionRead, PermissionWrite, PermissionUpload, PermissionDelete}
)

var roleConfigs = map[Role]RoleConfig{
	RoleDosen: {
		Role: RoleDosen,
		Folders: []FolderTemplate{
			{
				Name:             "Penelitian",
				AllowedFileTypes: []string{".pdf", ".doc", ".docx", ".xlsx"},
				MaxFileSize:      10,
				Description:      "Dokumen penelitian dan riset",
				Icon:             IconSearch,
			},
			{
				Name:             "Publikasi",
				AllowedFileTypes: []string{".pdf", ".doc", ".docx"},
				MaxFileSize:      5,
				Description:      "Artikel dan jurnal publikasi",
				Icon:             IconBookOpen,
			},
			{
				Name:             "Materi Kuliah",
				AllowedFileTypes: []string{".pdf", ".ppt", ".pptx", ".docx"},
				MaxFileSize:      20,
				Description:      "Materi pembelajaran dan presentasi",
				Icon:             IconGraduationCap,
			},
			{
				Name:             "Tugas Akhir",
				AllowedFileTypes: []string{".pdf", ".doc", ".docx"},
				MaxFileSize:      15,
				Description:      "Bimbingan tugas akhir mahasiswa",
				Icon:             IconFileText,
			},
		},
		Permissions: permsContributor,
		Color:       "blue",
		Description: "Dashboard untuk Dosen",
	},
	RoleTendik: {
		Role: RoleTendik,
		Folders: []FolderTemplate{
			{
				Name:             "Administrasi",
				AllowedFileTypes: []string{".pdf", ".xlsx", ".docx"},
				MaxFileSize:      5,
				Description:      "Dokumen administrasi umum",
				Icon:             IconClipboard,
			},
			{
				Name:             "Laporan",
				AllowedFileTypes: []string{".pdf", ".xlsx", ".docx"},
				MaxFileSize:      10,
				Description:      "Laporan bulanan dan tahunan",
				Icon:             IconBarChart,
			},
			{
				Name:             "Surat Menyurat",
				AllowedFileTypes: []string{".pdf", ".docx"},
				MaxFileSize:      2,
				Description:      "Surat resmi dan komunikasi",
				Icon:             IconMail,
			},
			{
				Name:             "Keuangan",
				AllowedFileTypes: []string{".pdf", ".xlsx"},
				MaxFileSize:      8,
				Description:      "Dokumen keuangan dan anggaran",
				Icon:             IconDollarSign,
			},
		},
		Permissions: permsContributor,
		Color:       "green",
		Description: "Dashboard untuk Tenaga Kependidikan",
	},
	RoleWakilDekan1: {
		Role: RoleWakilDekan1,
		Folders: []FolderTemplate{
			{
				Name:             "Akademik",
				AllowedFileTypes: []string{".pdf", ".docx", ".xlsx"},
				MaxFileSize:      15,
				Description:      "Dokumen akademik dan kurikulum",
				Icon:             IconBookOpen,
			},
			{
				Name:             "Kurikulum",
				AllowedFileTypes: []string{".pdf", ".docx"},
				MaxFileSize:      10,
				Description:      "Dokumen kurikulum dan silabus",
				Icon:             IconCalendar,
			},
			{
				Name:             "Evaluasi",
				AllowedFileTypes: []string{".pdf", ".xlsx"},
				MaxFileSize:      5,
				Description:      "Hasil evaluasi dan penilaian",
				Icon:             IconTrendingUp,
			},
			{
				Name:             "Kebijakan",
				AllowedFileTypes: []string{".pdf", ".docx"},
				MaxFileSize:      8,
				Description:      "Kebijakan akademik",
				Icon:             IconShield,
			},
		},
		Permissions: permsManager,
		Color:       "purple",
		Description: "Dashboard Wakil Dekan Bidang Akademik",
	},
	RoleWakilDekan2: {
		Role: RoleWakilDekan2,
		Folders: []FolderTemplate{
			{
				Name:             "Keuangan",
				AllowedFileTypes: []string{".pdf", ".xlsx"},
				MaxFileSize:      10,
				Description:      "Dokumen keuangan dan anggaran",
				Icon:             IconDollarSign,
			},
			{
				Name:             "Sarana Prasarana",
				AllowedFileTypes: []string{".pdf", ".docx"},
				MaxFileSize:      15,
				Description:      "Dokumen sarana dan prasarana",
				Icon:             IconBuilding,
			},
			{
				Name:             "Inventaris",
				AllowedFileTypes: []string{".pdf", ".xlsx"},
				MaxFileSize:      5,
				Description:      "Daftar inventaris dan aset",
				Icon:             IconPackage,
			},
			{
				Name:             "Pengadaan",
				AllowedFileTypes: []string{".pdf", ".docx", ".xlsx"},
				MaxFileSize:      8,
				Description:      "Dokumen pengadaan barang/jasa",
				Icon:             IconShoppingCart,
			},
		},
		Permissions: permsManager,
		Color:       "orange",
		Description: "Dashboard Wakil Dekan Bidang Umum & Keuangan",
	},
	RoleWakilDekan3: {
		Role: RoleWakilDekan3,
		Folders: []FolderTemplate{
			{
				Name:             "Kemahasiswaan",
				AllowedFileTypes: []string{".pdf", ".docx"},
				MaxFileSize:      10,
				Description:      "Dokumen kemahasiswaan dan organisasi",
				Icon:             IconUsers,
			},
			{
				Name:             "Alumni",
				AllowedFileTypes: []string{".pdf", ".xlsx"},
				MaxFileSize:      5,
				Description:      "Data alumni dan tracer study",
				Icon:             IconUserCheck,
			},
			{
				Name:             "Pengabdian",
				AllowedFileTypes: []string{".pdf", ".docx"},
				MaxFileSize:      15,
				Description:      "Dokumen pengabdian masyarakat",
				Icon:             IconHeart,
			},
			{
				Name:             "Kemitraan",
				AllowedFileTypes: []string{".pdf", ".docx", ".xlsx"},
				MaxFileSize:      8,
				Description:      "Dokumen kemitraan dan kerjasama",
				Icon:             IconHandshake,
			},
		},
		Permissions: permsManager,
		Color:       "pink",
		Description: "Dashboard Wakil Dekan Bidang Kemahasiswaan & Alumni",
	},
}

// GetRoleConfig returns a copy of the role's configuration.
// Unknown roles get the configuration of DefaultRole.
func GetRoleConfig(role Role) RoleConfig {
	c, ok := roleConfigs[role]
	if !ok {
		c = roleConfigs[DefaultRole]
	}

	return c.clone()
}

func (c RoleConfig) clone() RoleConfig {
	folders := make([]FolderTemplate, len(c.Folders))

	for i, f := range c.Folders {
		f.AllowedFileTypes = slices.Clone(f.AllowedFileTypes)
		folders[i] = f
	}

	c.Folders = folders
	c.Permissions = slices.Clone(c.Permissions)

	return c
}
