package model

// User is a registered player account. The stored password is a bcrypt hash
// and is never serialized.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"size:50;not null;unique" json:"username"`
	Password string `gorm:"size:255;not null" json:"-"`
	Games    []Game `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName keeps the singular table naming the deployed schema uses.
func (User) TableName() string { return "user" }

// Item is a catalog item definition. IDs are supplied by the client game,
// not generated by the database.
type Item struct {
	ID          int    `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name        string `gorm:"size:50;not null;unique" json:"name"`
	Description string `gorm:"size:500;not null;default:''" json:"description"`
	Price       int    `gorm:"not null" json:"price"`
}

func (Item) TableName() string { return "item" }

// Game is a single play session owned by exactly one user.
type Game struct {
	ID                uint        `gorm:"primaryKey" json:"id"`
	Score             int         `gorm:"not null" json:"score"`
	Coins             int         `gorm:"not null" json:"coins"`
	Lives             int         `gorm:"not null" json:"lives"`
	Ended             bool        `gorm:"not null" json:"ended"`
	EnemySpawnTimeout int         `gorm:"not null" json:"enemy_spawn_timeout"`
	UserID            uint        `gorm:"not null" json:"user_id"`
	Items             []ItemLevel `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE" json:"items"`
}

func (Game) TableName() string { return "game" }

// ItemLevel records that a game currently holds a catalog item at a level.
// It is keyed by (game, item) so a game can hold each item at most once.
// The resolved Item is embedded so a loaded game serializes without
// re-fetching the catalog.
type ItemLevel struct {
	GameID uint `gorm:"primaryKey" json:"game_id"`
	ItemID int  `gorm:"primaryKey" json:"item_id"`
	Level  int  `gorm:"not null" json:"level"`
	Item   Item `gorm:"foreignKey:ItemID;constraint:OnDelete:RESTRICT" json:"item"`
}

func (ItemLevel) TableName() string { return "item_level" }

// All lists every entity for schema migration, leaf tables first.
func All() []any {
	return []any{&User{}, &Item{}, &Game{}, &ItemLevel{}}
}
