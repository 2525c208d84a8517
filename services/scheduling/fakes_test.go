package scheduling

import (
	"medicalkz/models"
)

// fakeAppointmentStore is an in-memory AppointmentRepository for tests.
type fakeAppointmentStore struct {
	appointments []models.Appointment
}

func (f *fakeAppointmentStore) GetByID(id string) (*models.Appointment, error) {
	for i := range f.appointments {
		if f.appointments[i].ID == id {
			appt := f.appointments[i]
			return &appt, nil
		}
	}
	return nil, nil
}

func (f *fakeAppointmentStore) FindByDoctorAndDate(doctorID, date string, excludeStatuses []models.AppointmentStatus) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range f.appointments {
		if a.DoctorID != doctorID || a.Date != date {
			continue
		}
		excluded := false
		for _, s := range excludeStatuses {
			if a.Status == s {
				excluded = true
				break
			}
		}
		if !excluded {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentStore) List(filter models.AppointmentFilter) ([]models.Appointment, int64, error) {
	return f.appointments, int64(len(f.appointments)), nil
}

func (f *fakeAppointmentStore) Create(appt *models.Appointment) error {
	f.appointments = append(f.appointments, *appt)
	return nil
}

func (f *fakeAppointmentStore) Update(appt *models.Appointment) error {
	for i := range f.appointments {
		if f.appointments[i].ID == appt.ID {
			f.appointments[i] = *appt
			return nil
		}
	}
	return nil
}

func (f *fakeAppointmentStore) Delete(id string) error {
	for i := range f.appointments {
		if f.appointments[i].ID == id {
			f.appointments = append(f.appointments[:i], f.appointments[i+1:]...)
			return nil
		}
	}
	return nil
}

// fakeUserStore is an in-memory UserRepository for tests.
type fakeUserStore struct {
	users map[string]*models.User
}

func (f *fakeUserStore) GetByID(id string) (*models.User, error) {
	return f.users[id], nil
}

func (f *fakeUserStore) GetByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) GetDoctors() ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		if u.Role == models.RoleDoctor {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (f *fakeUserStore) Create(user *models.User) error {
	if f.users == nil {
		f.users = make(map[string]*models.User)
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserStore) Update(user *models.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserStore) UpdateDoctorAvailability(id string, availability models.WeeklyAvailability) error {
	if u, ok := f.users[id]; ok && u.DoctorProfile != nil {
		u.DoctorProfile.Availability = availability
	}
	return nil
}

func (f *fakeUserStore) UpdateTokenHash(id string, tokenHash string) error {
	if u, ok := f.users[id]; ok {
		u.TokenHash = tokenHash
	}
	return nil
}

func (f *fakeUserStore) Delete(id string) error {
	delete(f.users, id)
	return nil
}
