package postgres

// Timestamps são armazenados como milissegundos Unix (int64)

// UserModel é o model GORM para usuários
type UserModel struct {
	ID                     string  `gorm:"type:uuid;primaryKey"`
	ExternalID             string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	Email                  string  `gorm:"type:varchar(255);not null;index"`
	FirstName              string  `gorm:"type:varchar(255);not null;default:''"`
	LastName               string  `gorm:"type:varchar(255);not null;default:''"`
	PasswordHash           string  `gorm:"type:varchar(255);not null"`
	Role                   string  `gorm:"type:varchar(50);not null;index"`
	StripeCustomerID       *string `gorm:"type:varchar(255);uniqueIndex"`
	StripeSubscriptionID   *string `gorm:"type:varchar(255)"`
	StripeCurrentPeriodEnd *int64
	CreatedAt              int64 `gorm:"autoCreateTime:milli;index"`
	UpdatedAt              int64 `gorm:"autoUpdateTime:milli"`
}

func (UserModel) TableName() string {
	return "users"
}

// PlayerProfileModel é o model GORM para perfis de atleta
type PlayerProfileModel struct {
	ID                string   `gorm:"type:uuid;primaryKey"`
	UserID            string   `gorm:"type:uuid;uniqueIndex;not null"`
	FirstName         string   `gorm:"type:varchar(255);not null;default:''"`
	LastName          string   `gorm:"type:varchar(255);not null;default:''"`
	GraduationYear    int      `gorm:"not null;index"`
	Position          string   `gorm:"type:varchar(100);not null;default:''"`
	SecondaryPosition string   `gorm:"type:varchar(100);not null;default:''"`
	HeightInches      *int     `gorm:"index"`
	WeightLbs         *int     `gorm:"column:weight_lbs"`
	GPA               *float64 `gorm:"column:gpa;index"`
	SAT               *int     `gorm:"column:sat"`
	ACT               *int     `gorm:"column:act"`
	HighSchool        string   `gorm:"type:varchar(255);not null;default:''"`
	ClubTeam          string   `gorm:"type:varchar(255);not null;default:''"`
	City              string   `gorm:"type:varchar(255);not null;default:''"`
	State             string   `gorm:"type:varchar(2);not null;default:'';index"`
	Bio               string   `gorm:"type:text;not null;default:''"`
	Phone             string   `gorm:"type:varchar(50);not null;default:''"`
	ContactEmail      string   `gorm:"type:varchar(255);not null;default:''"`
	Twitter           string   `gorm:"type:varchar(255);not null;default:''"`
	Instagram         string   `gorm:"type:varchar(255);not null;default:''"`
	VideoURL          string   `gorm:"type:varchar(1000);not null;default:''"`
	PhotoURL          *string  `gorm:"type:varchar(1000)"`
	CreatedAt         int64    `gorm:"autoCreateTime:milli;index"`
	UpdatedAt         int64    `gorm:"autoUpdateTime:milli"`
	DeletedAt         *int64   `gorm:"index"` // Soft delete
}

func (PlayerProfileModel) TableName() string {
	return "player_profiles"
}

// CoachProfileModel é o model GORM para perfis de técnico
type CoachProfileModel struct {
	ID           string  `gorm:"type:uuid;primaryKey"`
	UserID       string  `gorm:"type:uuid;uniqueIndex;not null"`
	ProgramID    string  `gorm:"type:uuid;not null;index"`
	FirstName    string  `gorm:"type:varchar(255);not null;default:''"`
	LastName     string  `gorm:"type:varchar(255);not null;default:''"`
	Title        string  `gorm:"type:varchar(255);not null;default:''"`
	Phone        string  `gorm:"type:varchar(50);not null;default:''"`
	ContactEmail string  `gorm:"type:varchar(255);not null;default:''"`
	Bio          string  `gorm:"type:text;not null;default:''"`
	PhotoURL     *string `gorm:"type:varchar(1000)"`
	CreatedAt    int64   `gorm:"autoCreateTime:milli"`
	UpdatedAt    int64   `gorm:"autoUpdateTime:milli"`
}

func (CoachProfileModel) TableName() string {
	return "coach_profiles"
}

// SavedPlayerModel é o model GORM para atletas salvos por técnicos
type SavedPlayerModel struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	CoachID   string `gorm:"type:uuid;not null;uniqueIndex:idx_saved_players_coach_player"`
	PlayerID  string `gorm:"type:uuid;not null;uniqueIndex:idx_saved_players_coach_player;index"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;index"`
}

func (SavedPlayerModel) TableName() string {
	return "saved_players"
}

// PlayerNoteModel é o model GORM para anotações sobre atletas
type PlayerNoteModel struct {
	ID           string `gorm:"type:uuid;primaryKey"`
	AuthorUserID string `gorm:"type:uuid;not null;index:idx_player_notes_author_player"`
	PlayerID     string `gorm:"type:uuid;not null;index:idx_player_notes_author_player;index"`
	Body         string `gorm:"type:text;not null"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli"`
}

func (PlayerNoteModel) TableName() string {
	return "player_notes"
}

// ProgramModel é o model GORM para programas universitários
type ProgramModel struct {
	ID         string  `gorm:"type:uuid;primaryKey"`
	Name       string  `gorm:"type:varchar(255);not null;index"`
	Division   string  `gorm:"type:varchar(10);not null;index"`
	Conference string  `gorm:"type:varchar(255);not null;default:''"`
	City       string  `gorm:"type:varchar(255);not null;default:''"`
	State      string  `gorm:"type:varchar(2);not null;default:''"`
	Website    string  `gorm:"type:varchar(1000);not null;default:''"`
	LogoURL    *string `gorm:"type:varchar(1000)"`
	CreatedAt  int64   `gorm:"autoCreateTime:milli"`
	UpdatedAt  int64   `gorm:"autoUpdateTime:milli"`

	// Calculado na consulta, não é coluna
	HasCoach bool `gorm:"->;-:migration"`
}

func (ProgramModel) TableName() string {
	return "programs"
}

// TournamentModel é o model GORM para torneios
type TournamentModel struct {
	ID        string `gorm:"type:uuid;primaryKey"`
	Name      string `gorm:"type:varchar(255);not null"`
	Division  string `gorm:"type:varchar(100);not null;default:''"`
	City      string `gorm:"type:varchar(255);not null;default:''"`
	State     string `gorm:"type:varchar(2);not null;default:''"`
	Venue     string `gorm:"type:varchar(255);not null;default:''"`
	StartDate int64  `gorm:"not null;index"`
	EndDate   *int64
	Website   string `gorm:"type:varchar(1000);not null;default:''"`
	CreatedAt int64  `gorm:"autoCreateTime:milli"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli"`
}

func (TournamentModel) TableName() string {
	return "tournaments"
}

// AllModels lista os models para AutoMigrate (usado apenas nos testes com SQLite)
func AllModels() []any {
	return []any{
		&UserModel{},
		&PlayerProfileModel{},
		&CoachProfileModel{},
		&SavedPlayerModel{},
		&PlayerNoteModel{},
		&ProgramModel{},
		&TournamentModel{},
	}
}
