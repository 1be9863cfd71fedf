package services

import (
	"context"
	"time"

	"github.com/Chi-G/JPATHNEC-sub000/database"
	"github.com/Chi-G/JPATHNEC-sub000/lib"
	"github.com/Chi-G/JPATHNEC-sub000/structs/tables"
	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// AccountService manages the customer's address book and sign-in devices.
type AccountService struct {
	logger *gecho.Logger
	db     *database.DB
}

func NewAccountService(logger *gecho.Logger, db *database.DB) *AccountService {
	return &AccountService{
		logger: logger,
		db:     db,
	}
}

// GetAddresses returns the user's saved addresses, default first.
func (as *AccountService) GetAddresses(ctx context.Context, userId uuid.UUID) ([]tables.Address, error) {
	addresses, err := database.Query[tables.Address](as.db).
		Where("user_id", userId).
		OrderBy("is_default", database.DESC).
		OrderBy("created_at", database.ASC).
		All(ctx)
	if err != nil {
		return nil, lib.MapDBError(err)
	}
	return addresses, nil
}

// CreateAddress saves a new address. The first address of its type, or one
// flagged default, becomes the default and clears the flag elsewhere.
func (as *AccountService) CreateAddress(ctx context.Context, userId uuid.UUID, address *tables.Address) (*tables.Address, error) {
	address.Id = uuid.Nil
	address.UserId = userId

	err := database.Transaction(ctx, as.db, func(tx bun.Tx) error {
		count, txErr := database.QueryTx[tables.Address](tx).
			Where("user_id", userId).
			Where("type", address.Type).
			Count(ctx)
		if txErr != nil {
			return txErr
		}
		if count == 0 {
			address.IsDefault = true
		}

		if address.IsDefault {
			if txErr := as.clearDefaultTx(ctx, tx, userId, address.Type); txErr != nil {
				return txErr
			}
		}

		_, txErr = tx.NewInsert().Model(address).Exec(ctx)
		return txErr
	})
	if err != nil {
		return nil, lib.MapDBError(err)
	}

	as.logger.Debug("Address created",
		gecho.Field("user_id", userId),
		gecho.Field("address_id", address.Id),
		gecho.Field("type", address.Type))

	return address, nil
}

// UpdateAddress edits an address the user owns.
func (as *AccountService) UpdateAddress(ctx context.Context, userId, addressId uuid.UUID, address *tables.Address) (*tables.Address, error) {
	existing, err := database.Query[tables.Address](as.db).
		Where("id", addressId).
		Where("user_id", userId).
		First(ctx)
	if err != nil {
		return nil, lib.MapDBError(err)
	}
	if existing == nil {
		return nil, lib.ErrNotFound
	}

	err = database.Transaction(ctx, as.db, func(tx bun.Tx) error {
		if address.IsDefault && !existing.IsDefault {
			if txErr := as.clearDefaultTx(ctx, tx, userId, address.Type); txErr != nil {
				return txErr
			}
		}

		_, txErr := database.QueryTx[tables.Address](tx).
			Where("id", addressId).
			Where("user_id", userId).
			Update(ctx, map[string]any{
				"type":        address.Type,
				"first_name":  address.FirstName,
				"last_name":   address.LastName,
				"phone":       address.Phone,
				"line1":       address.Line1,
				"line2":       address.Line2,
				"city":        address.City,
				"state":       address.State,
				"postal_code": address.PostalCode,
				"country":     address.Country,
				"is_default":  address.IsDefault,
				"updated_at":  time.Now(),
			})
		return txErr
	})
	if err != nil {
		return nil, lib.MapDBError(err)
	}

	address.Id = addressId
	address.UserId = userId
	return address, nil
}

// DeleteAddress removes an address the user owns.
func (as *AccountService) DeleteAddress(ctx context.Context, userId, addressId uuid.UUID) error {
	affected, err := database.Query[tables.Address](as.db).
		Where("id", addressId).
		Where("user_id", userId).
		Delete(ctx)
	if err != nil {
		return lib.MapDBError(err)
	}
	if affected == 0 {
		return lib.ErrNotFound
	}
	return nil
}

// SetDefaultAddress flips the default flag to the given address.
func (as *AccountService) SetDefaultAddress(ctx context.Context, userId, addressId uuid.UUID) error {
	address, err := database.Query[tables.Address](as.db).
		Where("id", addressId).
		Where("user_id", userId).
		First(ctx)
	if err != nil {
		return lib.MapDBError(err)
	}
	if address == nil {
		return lib.ErrNotFound
	}

	err = database.Transaction(ctx, as.db, func(tx bun.Tx) error {
		if txErr := as.clearDefaultTx(ctx, tx, userId, address.Type); txErr != nil {
			return txErr
		}
		_, txErr := database.QueryTx[tables.Address](tx).
			Where("id", addressId).
			Update(ctx, map[string]any{
				"is_default": true,
				"updated_at": time.Now(),
			})
		return txErr
	})
	return lib.MapDBError(err)
}

func (as *AccountService) clearDefaultTx(ctx context.Context, tx bun.Tx, userId uuid.UUID, addrType tables.AddressType) error {
	_, err := database.QueryTx[tables.Address](tx).
		Where("user_id", userId).
		Where("type", addrType).
		Where("is_default", true).
		Update(ctx, map[string]any{
			"is_default": false,
			"updated_at": time.Now(),
		})
	return err
}

// UpdateProfile edits the user's name and phone.
func (as *AccountService) UpdateProfile(ctx context.Context, userId uuid.UUID, name, phone string) (*tables.User, error) {
	if _, err := database.Query[tables.User](as.db).Where("id", userId).Update(ctx, map[string]any{
		"name":  name,
		"phone": phone,
	}); err != nil {
		return nil, lib.MapDBError(err)
	}

	user, err := database.Query[tables.User](as.db).Where("id", userId).First(ctx)
	if err != nil {
		return nil, lib.MapDBError(err)
	}
	if user == nil {
		return nil, lib.ErrNotFound
	}
	user.PasswordHash = ""
	return user, nil
}

// RecordDevice upserts the device row a login came from, keyed on the
// user agent per user.
func (as *AccountService) RecordDevice(ctx context.Context, userId uuid.UUID, deviceName, ipAddress, userAgent string) {
	device := &tables.UserDevice{
		UserId:     userId,
		DeviceName: deviceName,
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
		LastSeenAt: time.Now(),
	}

	_, err := database.Upsert(as.db.DB, ctx, device,
		"user_id, user_agent",
		"device_name", "ip_address", "last_seen_at")
	if err != nil {
		as.logger.Warn("Failed to record device",
			gecho.Field("error", err),
			gecho.Field("user_id", userId))
	}
}

// GetDevices lists the user's recent sign-in devices.
func (as *AccountService) GetDevices(ctx context.Context, userId uuid.UUID) ([]tables.UserDevice, error) {
	devices, err := database.Query[tables.UserDevice](as.db).
		Where("user_id", userId).
		OrderBy("last_seen_at", database.DESC).
		All(ctx)
	if err != nil {
		return nil, lib.MapDBError(err)
	}
	return devices, nil
}
