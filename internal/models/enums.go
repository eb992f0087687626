package models

type Gender string
type WorkExperience string

const (
	GenderMale        Gender = "MALE"
	GenderFemale      Gender = "FEMALE"
	GenderTransgender Gender = "TRANSGENDER"

	WorkExperienceFresher     WorkExperience = "FRESHER"
	WorkExperienceExperienced WorkExperience = "EXPERIENCED"
)

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderTransgender:
		return true
	}
	return false
}

func (w WorkExperience) IsValid() bool {
	switch w {
	case WorkExperienceFresher, WorkExperienceExperienced:
		return true
	}
	return false
}
