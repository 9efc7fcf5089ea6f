package gorm

import "time"

// Experience is a tandem/experience course application.
type Experience struct {
	ID                 uint       `gorm:"column:id;primaryKey"`
	ApplicationDate    *time.Time `gorm:"column:application_date;type:date"`
	FullName           string     `gorm:"column:full_name;type:varchar(100);not null"`
	Furigana           string     `gorm:"column:furigana;type:varchar(100)"`
	Gender             string     `gorm:"column:gender;type:varchar(10)"`
	BloodType          string     `gorm:"column:blood_type;type:varchar(10)"`
	Birthday           *time.Time `gorm:"column:birthday;type:date"`
	Weight             string     `gorm:"column:weight;type:varchar(10)"`
	ZipCode            string     `gorm:"column:zip_code;type:varchar(10)"`
	Address            string     `gorm:"column:address;type:varchar(255)"`
	MobilePhone        string     `gorm:"column:mobile_phone;type:varchar(20)"`
	HomePhone          string     `gorm:"column:home_phone;type:varchar(20)"`
	CompanyName        string     `gorm:"column:company_name;type:varchar(100)"`
	CompanyPhone       string     `gorm:"column:company_phone;type:varchar(20)"`
	EmergencyName      string     `gorm:"column:emergency_name;type:varchar(100)"`
	EmergencyPhone     string     `gorm:"column:emergency_phone;type:varchar(20)"`
	Email              string     `gorm:"column:email;type:varchar(255)"`
	MedicalHistory     string     `gorm:"column:medical_history;type:text"`
	Relationship       string     `gorm:"column:relationship;type:varchar(10)"`
	CourseExp          string     `gorm:"column:course_exp;type:varchar(20)"`
	SchoolFind         string     `gorm:"column:school_find;type:varchar(50)"`
	SchoolText         string     `gorm:"column:school_text;type:varchar(100)"`
	AgreementDate      *time.Time `gorm:"column:agreement_date;type:date"`
	SignatureName      string     `gorm:"column:signature_name;type:varchar(100);not null"`
	GuardianName       string     `gorm:"column:guardian_name;type:varchar(100)"`
	InsuranceAgreement bool       `gorm:"column:insurance_agreement;not null"`
}

// TableName specifies the table name for GORM
func (Experience) TableName() string {
	return "experience"
}
