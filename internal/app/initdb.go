package app

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/upgradeats/upgradeats/internal/domain"
)

// MigrateDB creates or updates every table the application owns.
func (a *Application) MigrateDB() error {
	if err := a.gormDB.AutoMigrate(domain.Tables...); err != nil {
		return errors.Wrap(err, "auto migrate")
	}
	return nil
}

// InitDb seeds the records the application cannot run without.
func (a *Application) InitDb() {
	a.checkSuper()
	a.checkCatalog()
}

func (a *Application) checkSuper() {
	const superEmail = "admin@upgradeats.id"
	const defaultPassword = "upgradeats"

	hashed, err := bcrypt.GenerateFromPassword([]byte(defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		zap.L().Error("failed to hash default password", zap.Error(err))
		return
	}

	var operator domain.SysOpr
	err = a.gormDB.Where("email = ?", superEmail).First(&operator).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := a.gormDB.Create(&domain.SysOpr{
			Realname:  "administrator",
			Email:     superEmail,
			Password:  string(hashed),
			Level:     "super",
			Status:    "enabled",
			Remark:    "super",
			LastLogin: time.Now(),
		}).Error; err != nil {
			zap.L().Error("failed to create default super admin", zap.Error(err))
		} else {
			zap.L().Info("initialized default super admin account", zap.String("email", superEmail))
		}
		return
	case err != nil:
		zap.L().Error("failed to query super admin", zap.Error(err))
		return
	}

	resetPassword := strings.TrimSpace(operator.Password) == ""
	resetLevel := !strings.EqualFold(operator.Level, "super")
	resetStatus := !strings.EqualFold(operator.Status, "enabled")

	if !resetPassword && !resetLevel && !resetStatus {
		return
	}

	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if resetPassword {
		updates["password"] = string(hashed)
	}
	if resetLevel {
		updates["level"] = "super"
	}
	if resetStatus {
		updates["status"] = "enabled"
	}

	if err := a.gormDB.Model(&domain.SysOpr{}).Where("id = ?", operator.ID).Updates(updates).Error; err != nil {
		zap.L().Error("failed to repair super admin account", zap.Error(err))
		return
	}

	zap.L().Warn("repaired default super admin account",
		zap.String("email", superEmail),
		zap.Bool("passwordReset", resetPassword),
		zap.Bool("levelReset", resetLevel),
		zap.Bool("statusEnabled", resetStatus))
}

// checkCatalog seeds a starter menu and landing-page content on an empty
// database so the storefront renders something on first boot.
func (a *Application) checkCatalog() {
	var count int64
	if err := a.gormDB.Model(&domain.Product{}).Count(&count).Error; err != nil {
		zap.L().Error("failed to count products", zap.Error(err))
		return
	}
	if count > 0 {
		return
	}

	seedProducts := []domain.Product{
		{Name: "Salad Wrap", Price: "Rp 15.000", Category: "Segar Alami", ImageURL: "https://images.upgradeats.id/salad-wrap.jpg", Description: "Wrap sayur segar dengan saus wijen."},
		{Name: "Nasi Ayam Geprek", Price: "Rp 12.000", Category: "Menu Utama", ImageURL: "https://images.upgradeats.id/ayam-geprek.jpg", Description: "Ayam geprek sambal bawang, porsi mahasiswa."},
		{Name: "Es Kopi Susu", Price: "Rp 8.000", Category: "Minuman", ImageURL: "https://images.upgradeats.id/kopi-susu.jpg", Description: "Kopi susu gula aren."},
	}
	if err := a.gormDB.Create(&seedProducts).Error; err != nil {
		zap.L().Error("failed to seed products", zap.Error(err))
	}

	seedFeatures := []domain.Feature{
		{Title: "Higienis", Text: "Dapur bersih, bahan segar setiap hari.", Icon: string(domain.IconShieldCheck)},
		{Title: "Cepat", Text: "Pesan lewat WhatsApp, siap dalam hitungan menit.", Icon: string(domain.IconClock)},
		{Title: "Alami", Text: "Tanpa pengawet, tanpa MSG berlebih.", Icon: string(domain.IconLeaf)},
	}
	if err := a.gormDB.Create(&seedFeatures).Error; err != nil {
		zap.L().Error("failed to seed features", zap.Error(err))
	}

	zap.L().Info("seeded starter catalog",
		zap.Int("products", len(seedProducts)),
		zap.Int("features", len(seedFeatures)))
}
