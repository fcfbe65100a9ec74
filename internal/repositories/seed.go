package repositories

import "github.com/skillsage/skillsage-service/internal/models"

// SeedCourses returns the initial course catalog loaded on first boot.
// Shared by the postgres and memory implementations so both stores start
// from the same content.
func SeedCourses() []*models.Course {
	return []*models.Course{
		{
			ID:          "course-python-foundations",
			Title:       "Python Foundations",
			Description: "Variables, control flow, functions and the standard library, taught through small projects.",
			ImageURL:    "https://cdn.skillsage.io/courses/python-foundations.png",
			Difficulty:  models.DifficultyBeginner,
			Duration:    "6 weeks",
			Rating:      46,
			Category:    "Programming",
			Recommended: true,
		},
		{
			ID:          "course-data-structures",
			Title:       "Data Structures & Algorithms",
			Description: "Arrays, trees, graphs and the classic algorithms interviewers keep asking about.",
			ImageURL:    "https://cdn.skillsage.io/courses/dsa.png",
			Difficulty:  models.DifficultyIntermediate,
			Duration:    "8 weeks",
			Rating:      47,
			Category:    "Computer Science",
			Recommended: true,
		},
		{
			ID:          "course-web-development",
			Title:       "Full-Stack Web Development",
			Description: "Build and deploy a complete web application: REST APIs, databases and a modern frontend.",
			ImageURL:    "https://cdn.skillsage.io/courses/fullstack.png",
			Difficulty:  models.DifficultyIntermediate,
			Duration:    "10 weeks",
			Rating:      44,
			Category:    "Web Development",
			Recommended: true,
		},
		{
			ID:          "course-machine-learning",
			Title:       "Machine Learning Fundamentals",
			Description: "Supervised learning, model evaluation and a gentle introduction to neural networks.",
			ImageURL:    "https://cdn.skillsage.io/courses/ml.png",
			Difficulty:  models.DifficultyAdvanced,
			Duration:    "12 weeks",
			Rating:      48,
			Category:    "Data Science",
			Recommended: false,
		},
		{
			ID:          "course-cloud-essentials",
			Title:       "Cloud Computing Essentials",
			Description: "Core cloud concepts, containers and CI/CD pipelines for application teams.",
			ImageURL:    "https://cdn.skillsage.io/courses/cloud.png",
			Difficulty:  models.DifficultyBeginner,
			Duration:    "4 weeks",
			Rating:      42,
			Category:    "DevOps",
			Recommended: false,
		},
		{
			ID:          "course-system-design",
			Title:       "System Design for Interviews",
			Description: "Scalability, caching, messaging and how to reason about trade-offs on a whiteboard.",
			ImageURL:    "https://cdn.skillsage.io/courses/system-design.png",
			Difficulty:  models.DifficultyAdvanced,
			Duration:    "6 weeks",
			Rating:      45,
			Category:    "Computer Science",
			Recommended: false,
		},
	}
}
