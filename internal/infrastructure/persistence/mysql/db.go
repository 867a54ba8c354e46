package mysql

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/locallibrary/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. 开发环境开启SQL日志，生产环境关闭
// 4. 自动迁移表结构（AutoMigrate）
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.Database.DSN()

	// 开发环境打印SQL
	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	log.Println("✓ 数据库连接成功")

	// 自动迁移表结构（开发环境）
	// 注意：生产环境应使用专门的迁移工具（如golang-migrate）
	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	return db, nil
}

// autoMigrate 自动迁移表结构
// AutoMigrate只会创建表、添加字段，不会删除或修改现有字段
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&AuthorModel{},
		&GenreModel{},
		&LanguageModel{},
		&BookModel{},
		&BookInstanceModel{},
		&UserModel{},
	)
}

// AuthorModel GORM作者模型
// 设计说明：
// 1. 这是infrastructure层的数据模型，包含GORM tag
// 2. domain/catalog是领域实体，不依赖GORM
// 3. Repository负责两者之间的转换
// 4. 目录数据无软删除，删除即物理删除
type AuthorModel struct {
	ID          uint       `gorm:"primaryKey"`
	FirstName   string     `gorm:"size:100;not null;comment:名"`
	LastName    string     `gorm:"size:100;not null;comment:姓"`
	DateOfBirth *time.Time `gorm:"type:date;comment:出生日期"`
	DateOfDeath *time.Time `gorm:"type:date;comment:去世日期"`
	CreatedAt   time.Time  `gorm:"comment:创建时间"`
	UpdatedAt   time.Time  `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (AuthorModel) TableName() string {
	return "authors"
}

// GenreModel GORM体裁模型
// 与BookModel通过book_genres连接表形成多对多关系
type GenreModel struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"uniqueIndex;size:200;not null;comment:体裁名称"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (GenreModel) TableName() string {
	return "genres"
}

// LanguageModel GORM语种模型
type LanguageModel struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"uniqueIndex;size:200;not null;comment:语种名称"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (LanguageModel) TableName() string {
	return "languages"
}

// BookModel GORM图书模型
// 设计说明：
// 1. AuthorID、LanguageID为可空外键
// 2. Genres通过many2many连接表维护（集合语义，整体替换）
type BookModel struct {
	ID         uint           `gorm:"primaryKey"`
	Title      string         `gorm:"size:200;not null;comment:书名"`
	Summary    string         `gorm:"type:text;comment:简介"`
	ISBN       string         `gorm:"size:20;not null;comment:ISBN号"`
	AuthorID   *uint          `gorm:"index;comment:作者ID(可空)"`
	Author     *AuthorModel   `gorm:"foreignKey:AuthorID"`
	LanguageID *uint          `gorm:"index;comment:语种ID(可空)"`
	Language   *LanguageModel `gorm:"foreignKey:LanguageID"`
	Genres     []GenreModel   `gorm:"many2many:book_genres"` // 多对多关联
	CreatedAt  time.Time      `gorm:"comment:创建时间"`
	UpdatedAt  time.Time      `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// BookInstanceModel GORM图书副本模型
// 设计说明：
// 1. 主键是服务端生成的UUID文本形式（非自增整数）
// 2. Status为单字符编码（a在架/m维护/o借出/r预约）
// 3. BorrowerID引用users表，可空
type BookInstanceModel struct {
	ID         string     `gorm:"primaryKey;size:36;comment:副本标识(UUID)"`
	BookID     uint       `gorm:"index;not null;comment:所属图书ID"`
	Book       *BookModel `gorm:"foreignKey:BookID"`
	Imprint    string     `gorm:"size:200;not null;comment:版次说明"`
	DueBack    *time.Time `gorm:"type:date;comment:应还日期"`
	BorrowerID *uint      `gorm:"index;comment:借阅人用户ID"`
	Status     string     `gorm:"type:char(1);not null;default:'a';comment:状态"`
	CreatedAt  time.Time  `gorm:"comment:创建时间"`
	UpdatedAt  time.Time  `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (BookInstanceModel) TableName() string {
	return "book_instances"
}

// UserModel GORM用户模型
// 用户由外部身份系统管理，本服务只读（签发Token、解析借阅人）
type UserModel struct {
	ID          uint      `gorm:"primaryKey"`
	Username    string    `gorm:"uniqueIndex;size:150;not null;comment:用户名"`
	Password    string    `gorm:"size:255;not null;comment:密码(bcrypt加密)"`
	Permissions string    `gorm:"size:500;comment:权限列表(分号分隔)"`
	CreatedAt   time.Time `gorm:"comment:创建时间"`
	UpdatedAt   time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (UserModel) TableName() string {
	return "users"
}
