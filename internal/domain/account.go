package domain

type AccountID string

type Account struct {
	ID      AccountID
	Email   string
	Profile Profile
}

// Profile holds the health data required before assessments may run.
// Zero means absent for the numeric fields.
type Profile struct {
	Age      int
	Weight   int
	Height   int
	Smoking  bool
	Drinking bool
}

// Complete reports whether age, weight and height are all present.
// A recorded zero counts as absent.
func (p Profile) Complete() bool {
	return p.Age != 0 && p.Weight != 0 && p.Height != 0
}

// ProfilePatch is a partial profile update. Nil fields are left
// untouched by Apply.
type ProfilePatch struct {
	Age      *int
	Weight   *int
	Height   *int
	Smoking  *bool
	Drinking *bool
}

func (patch ProfilePatch) Apply(profile Profile) Profile {
	if patch.Age != nil {
		profile.Age = *patch.Age
	}
	if patch.Weight != nil {
		profile.Weight = *patch.Weight
	}
	if patch.Height != nil {
		profile.Height = *patch.Height
	}
	if patch.Smoking != nil {
		profile.Smoking = *patch.Smoking
	}
	if patch.Drinking != nil {
		profile.Drinking = *patch.Drinking
	}

	return profile
}
