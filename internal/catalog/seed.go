package catalog

// SeedCourses returns the starter catalog shipped with the CLI.
// The `coursemate catalog seed` command loads these into the store.
func SeedCourses() []Course {
	return []Course{
		{
			ID:              "js-foundations",
			Title:           "JavaScript Foundations",
			Description:     "Start from zero and learn variables, functions, arrays and the DOM by building small browser projects.",
			Category:        "Web Development",
			Level:           LevelBeginner,
			Price:           29,
			Skills:          []string{"javascript", "html", "css"},
			DurationMinutes: 720,
			EnrolledCount:   18450,
			RatingAverage:   4.6,
		},
		{
			ID:              "react-in-practice",
			Title:           "React in Practice",
			Description:     "Build production-grade interfaces with React hooks, routing and state management for modern web apps.",
			Category:        "Web Development",
			Level:           LevelIntermediate,
			Price:           49,
			Skills:          []string{"react", "javascript", "frontend"},
			DurationMinutes: 960,
			EnrolledCount:   9320,
			RatingAverage:   4.7,
		},
		{
			ID:              "python-for-everyone",
			Title:           "Python for Everyone",
			Description:     "A gentle introduction to python programming with exercises in automation and data handling.",
			Category:        "Programming",
			Level:           LevelBeginner,
			Price:           25,
			Skills:          []string{"python"},
			DurationMinutes: 840,
			EnrolledCount:   25600,
			RatingAverage:   4.5,
		},
		{
			ID:              "data-science-bootcamp",
			Title:           "Data Science Bootcamp",
			Description:     "Hands-on data science with python, pandas and machine learning on real datasets from finance and healthcare.",
			Category:        "Data Science",
			Level:           LevelIntermediate,
			Price:           89,
			Skills:          []string{"python", "data science", "machine learning", "pandas"},
			DurationMinutes: 1800,
			EnrolledCount:   14100,
			RatingAverage:   4.8,
		},
		{
			ID:              "go-backend-services",
			Title:           "Backend Services with Go",
			Description:     "Design and ship HTTP services in golang: routing, databases, testing and deployment to the cloud.",
			Category:        "Programming",
			Level:           LevelIntermediate,
			Price:           59,
			Skills:          []string{"go", "golang", "backend", "sql"},
			DurationMinutes: 1100,
			EnrolledCount:   6200,
			RatingAverage:   4.7,
		},
		{
			ID:              "ml-advanced",
			Title:           "Advanced Machine Learning",
			Description:     "Deep learning architectures, model tuning and deployment for engineers who already know the basics of machine learning.",
			Category:        "Data Science",
			Level:           LevelAdvanced,
			Price:           120,
			Skills:          []string{"machine learning", "deep learning", "python", "ai"},
			DurationMinutes: 2100,
			EnrolledCount:   3900,
			RatingAverage:   4.6,
		},
		{
			ID:              "sql-for-analysts",
			Title:           "SQL for Data Analysts",
			Description:     "Query, join and aggregate with confidence. Practical sql for reporting, dashboards and data analysis.",
			Category:        "Data Science",
			Level:           LevelBeginner,
			Price:           19,
			Skills:          []string{"sql", "data analysis"},
			DurationMinutes: 480,
			EnrolledCount:   21000,
			RatingAverage:   4.4,
		},
		{
			ID:              "cloud-devops",
			Title:           "Cloud & DevOps Essentials",
			Description:     "Docker, kubernetes and CI/CD pipelines. Everything needed to run applications reliably in the cloud.",
			Category:        "DevOps",
			Level:           LevelIntermediate,
			Price:           75,
			Skills:          []string{"docker", "kubernetes", "devops", "aws"},
			DurationMinutes: 1400,
			EnrolledCount:   7800,
			RatingAverage:   4.5,
		},
		{
			ID:              "ux-design-basics",
			Title:           "UX Design Basics",
			Description:     "User research, wireframing and prototyping in figma for aspiring product designers.",
			Category:        "Design",
			Level:           LevelBeginner,
			Price:           35,
			Skills:          []string{"ux", "figma", "design"},
			DurationMinutes: 600,
			EnrolledCount:   11200,
			RatingAverage:   4.3,
		},
		{
			ID:              "mobile-flutter",
			Title:           "Cross-Platform Apps with Flutter",
			Description:     "Build and publish iOS and Android apps from one dart codebase, from widgets to app-store release.",
			Category:        "Mobile Development",
			Level:           LevelIntermediate,
			Price:           55,
			Skills:          []string{"flutter", "dart", "mobile"},
			DurationMinutes: 1300,
			EnrolledCount:   5400,
			RatingAverage:   4.6,
		},
	}
}
