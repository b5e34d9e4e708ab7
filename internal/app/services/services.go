package services

// Services defined in this package:
// - UserService: provisions local accounts from the external identity provider
// - DepartmentService: department catalog operations
// - CourseService: course catalog operations and course review aggregates
// - ProfessorService: professor directory operations and review aggregates
// - ReviewService: review, vote and report operations
// - FacultySyncService: scrapes the university directory and reconciles professors
