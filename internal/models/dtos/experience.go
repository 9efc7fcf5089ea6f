package dtos

// ExperienceRequest mirrors the experience course form. Dates are YYYY-MM-DD or blank.
type ExperienceRequest struct {
	ApplicationDate    string `form:"application_date"`
	FullName           string `form:"full_name" validate:"required,max=100"`
	Furigana           string `form:"furigana" validate:"max=100"`
	Gender             string `form:"gender" validate:"max=10"`
	BloodType          string `form:"blood_type" validate:"max=10"`
	Birthday           string `form:"birthday"`
	Weight             string `form:"weight" validate:"max=10"`
	Zip1               string `form:"zip1"`
	Zip2               string `form:"zip2"`
	Address            string `form:"address" validate:"max=255"`
	MobilePhone        string `form:"mobile_phone" validate:"max=20"`
	HomePhone          string `form:"home_phone" validate:"max=20"`
	CompanyName        string `form:"company_name" validate:"max=100"`
	CompanyPhone       string `form:"company_phone" validate:"max=20"`
	EmergencyName      string `form:"emergency_name" validate:"max=100"`
	EmergencyPhone     string `form:"emergency_phone" validate:"max=20"`
	Email              string `form:"email" validate:"omitempty,email,max=255"`
	MedicalHistory     string `form:"medical_history"`
	Relationship       string `form:"relationship" validate:"max=10"`
	CourseExp          string `form:"course_exp" validate:"max=20"`
	SchoolFind         string `form:"school_find" validate:"max=50"`
	SchoolText         string `form:"school_text" validate:"max=100"`
	AgreementDate      string `form:"agreement_date"`
	SignatureName      string `form:"signature_name" validate:"required,max=100"`
	GuardianName       string `form:"guardian_name" validate:"max=100"`
	InsuranceAgreement string `form:"insurance_agreement"`
}

type ExperienceResponse struct {
	ID uint `json:"id"`
}
