package toml

import (
	"fmt"

	"github.com/kriju0726/HealiFy/internal/domain"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version         int            `toml:"version"`
	Account         *accountSchema `toml:"account,omitempty"`
	RememberedRoute string         `toml:"remembered_route,omitempty"`
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported session schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type accountSchema struct {
	ID      string        `toml:"id"`
	Email   string        `toml:"email"`
	Profile profileSchema `toml:"profile"`
}

type profileSchema struct {
	Age      int  `toml:"age"`
	Weight   int  `toml:"weight"`
	Height   int  `toml:"height"`
	Smoking  bool `toml:"smoking"`
	Drinking bool `toml:"drinking"`
}

func toSchema(snapshot domain.SessionSnapshot) fileSchema {
	file := fileSchema{
		Version:         currentSchemaVersion,
		RememberedRoute: snapshot.RememberedRoute,
	}

	if snapshot.Account != nil {
		file.Account = &accountSchema{
			ID:    string(snapshot.Account.ID),
			Email: snapshot.Account.Email,
			Profile: profileSchema{
				Age:      snapshot.Account.Profile.Age,
				Weight:   snapshot.Account.Profile.Weight,
				Height:   snapshot.Account.Profile.Height,
				Smoking:  snapshot.Account.Profile.Smoking,
				Drinking: snapshot.Account.Profile.Drinking,
			},
		}
	}

	return file
}

func fromSchema(file fileSchema) domain.SessionSnapshot {
	snapshot := domain.SessionSnapshot{RememberedRoute: file.RememberedRoute}

	if file.Account != nil {
		snapshot.Account = &domain.Account{
			ID:    domain.AccountID(file.Account.ID),
			Email: file.Account.Email,
			Profile: domain.Profile{
				Age:      file.Account.Profile.Age,
				Weight:   file.Account.Profile.Weight,
				Height:   file.Account.Profile.Height,
				Smoking:  file.Account.Profile.Smoking,
				Drinking: file.Account.Profile.Drinking,
			},
		}
	}

	return snapshot
}
