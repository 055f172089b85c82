package analytics

import (
	"time"

	"fitclub-admin-backend/internal/model"
)

// day parses a "YYYY-MM-DD" fixture date.
func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func i64(v int64) *int64 { return &v }

// reservation builds a fully linked reservation: member, schedule,
// class, instructor and location all present, location referenced via
// the schedule's direct id.
func reservation(id int64, date string, status model.ReservationStatus) model.Reservation {
	return model.Reservation{
		ID:              id,
		MemberID:        i64(500 + id),
		ReservationDate: day(date),
		Status:          status,
		CreatedAt:       day(date).Add(-48 * time.Hour),
		Member: &model.Member{
			ID:       500 + id,
			FullName: "Ana García",
			Email:    "ana@example.com",
		},
		ScheduleID: i64(10),
		Schedule: &model.ClassSchedule{
			ID:         10,
			StartTime:  "18:00:00",
			ClassID:    i64(1),
			LocationID: i64(7),
			Location:   &model.Location{ID: 7, Name: "Sede Centro"},
			Class: &model.Class{
				ID:           1,
				Name:         "Yoga",
				InstructorID: i64(3),
				Instructor:   &model.Instructor{ID: 3, Name: "Carlos Pérez"},
			},
		},
	}
}

// bare builds a reservation with no nested references at all.
func bare(id int64, date string, status model.ReservationStatus) model.Reservation {
	return model.Reservation{
		ID:              id,
		ReservationDate: day(date),
		Status:          status,
	}
}

// withClass renames the class and gives it a distinct id/schedule so
// fixtures can spread reservations over different sessions.
func withClass(r model.Reservation, scheduleID, classID int64, name, startTime string) model.Reservation {
	r.ScheduleID = i64(scheduleID)
	schedule := *r.Schedule
	class := *schedule.Class
	schedule.ID = scheduleID
	schedule.StartTime = startTime
	class.ID = classID
	class.Name = name
	schedule.Class = &class
	schedule.ClassID = i64(classID)
	r.Schedule = &schedule
	return r
}

// withInstructor swaps the instructor on the reservation's class.
func withInstructor(r model.Reservation, id int64, name string) model.Reservation {
	schedule := *r.Schedule
	class := *schedule.Class
	class.InstructorID = i64(id)
	class.Instructor = &model.Instructor{ID: id, Name: name}
	schedule.Class = &class
	r.Schedule = &schedule
	return r
}

// withMember swaps the member.
func withMember(r model.Reservation, name, email string) model.Reservation {
	member := *r.Member
	member.FullName = name
	member.Email = email
	r.Member = &member
	return r
}
