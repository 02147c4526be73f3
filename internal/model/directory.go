package model

import (
	"strings"
	"time"
)

// Staff - сотрудник, к которому можно записаться
type Staff struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Service - услуга, Duration - длительность записи по умолчанию в минутах
type Service struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Duration int    `json:"duration"` // в минутах
	Color    string `json:"color"`
}

// DurationTime возвращает Duration как time.Duration
func (s Service) DurationTime() time.Duration {
	return time.Duration(s.Duration) * time.Minute
}

type Customer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

type UserRole string

const (
	UserRoleStaff UserRole = "staff"
	UserRoleAdmin UserRole = "admin"
	UserRoleOwner UserRole = "owner"
)

// Directory - справочники с поиском по ID
type Directory struct {
	Staff     []Staff
	Services  []Service
	Customers []Customer

	staff     map[string]Staff
	services  map[string]Service
	customers map[string]Customer
}

func NewDirectory(staff []Staff, services []Service, customers []Customer) Directory {
	d := Directory{
		Staff:     staff,
		Services:  services,
		Customers: customers,
		staff:     make(map[string]Staff, len(staff)),
		services:  make(map[string]Service, len(services)),
		customers: make(map[string]Customer, len(customers)),
	}
	for _, s := range staff {
		d.staff[s.ID] = s
	}
	for _, s := range services {
		d.services[s.ID] = s
	}
	for _, c := range customers {
		d.customers[c.ID] = c
	}
	return d
}

// StaffName возвращает имя сотрудника или id, если он неизвестен
func (d Directory) StaffName(id string) string {
	if s, ok := d.staff[id]; ok {
		return s.Name
	}
	return id
}

func (d Directory) Service(id string) (Service, bool) {
	s, ok := d.services[id]
	return s, ok
}

// CustomerName возвращает "" при отсутствии клиента
func (d Directory) CustomerName(id *string) string {
	if id == nil {
		return ""
	}
	if c, ok := d.customers[*id]; ok {
		return c.Name
	}
	return *id
}

// Label - подпись блока: название или имя услуги, если название пустое
func (d Directory) Label(a Appointment) string {
	if strings.TrimSpace(a.Title) != "" {
		return a.Title
	}
	if s, ok := d.services[a.ServiceID]; ok {
		return s.Name
	}
	return a.ServiceID
}
