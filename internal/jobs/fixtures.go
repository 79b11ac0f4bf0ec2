package jobs

import "github.com/jonathan/job-platform/internal/types"

// fixtures are the placeholder listings served by the board. Stable ids so
// the detail and apply endpoints resolve consistently across requests.
var fixtures = []types.JobListing{
	{
		ID:              "a1b2c3d4-e5f6-7890-abcd-ef1234567890",
		Title:           "Senior Software Engineer",
		Company:         "TechCorp Inc.",
		Location:        "San Francisco, CA",
		JobType:         "Full-time",
		ExperienceLevel: "Senior",
		SalaryMin:       150000,
		SalaryMax:       200000,
		Description:     "We are looking for a senior software engineer to join our team and help build the next generation of our platform.",
		SkillsRequired:  []string{"Python", "Django", "React", "5+ years experience"},
		PostedDate:      "2025-09-01",
		Source:          types.SourceAPI,
		IsRemote:        false,
	},
	{
		ID:              "b2c3d4e5-f6a7-8901-bcde-f23456789012",
		Title:           "Data Scientist",
		Company:         "DataFlow Solutions",
		Location:        "New York, NY",
		JobType:         "Full-time",
		ExperienceLevel: "Mid-level",
		SalaryMin:       120000,
		SalaryMax:       160000,
		Description:     "Join our data science team to work on cutting-edge ML projects.",
		SkillsRequired:  []string{"Python", "Machine Learning", "SQL", "3+ years experience"},
		PostedDate:      "2025-09-03",
		Source:          types.SourceAPI,
		IsRemote:        false,
	},
	{
		ID:              "c3d4e5f6-a7b8-9012-cdef-345678901234",
		Title:           "Frontend Developer",
		Company:         "WebDesign Pro",
		Location:        "Austin, TX",
		JobType:         "Remote",
		ExperienceLevel: "Junior",
		SalaryMin:       80000,
		SalaryMax:       110000,
		Description:     "Looking for a passionate frontend developer.",
		SkillsRequired:  []string{"React", "TypeScript", "CSS", "2+ years experience"},
		PostedDate:      "2025-09-05",
		Source:          types.SourceAPI,
		IsRemote:        true,
	},
	{
		ID:              "d4e5f6a7-b8c9-0123-defa-456789012345",
		Title:           "DevOps Engineer",
		Company:         "CloudTech Systems",
		Location:        "Seattle, WA",
		JobType:         "Full-time",
		ExperienceLevel: "Senior",
		SalaryMin:       140000,
		SalaryMax:       180000,
		Description:     "We need a DevOps engineer to manage our cloud infrastructure.",
		SkillsRequired:  []string{"AWS", "Docker", "Kubernetes", "4+ years experience"},
		PostedDate:      "2025-09-07",
		Source:          types.SourceAPI,
		IsRemote:        false,
	},
	{
		ID:              "e5f6a7b8-c9d0-1234-efab-567890123456",
		Title:           "Product Manager",
		Company:         "Innovation Labs",
		Location:        "Los Angeles, CA",
		JobType:         "Full-time",
		ExperienceLevel: "Mid-level",
		SalaryMin:       130000,
		SalaryMax:       170000,
		Description:     "Lead product development for our next-generation platform.",
		SkillsRequired:  []string{"Product Management", "Agile", "Analytics", "3+ years experience"},
		PostedDate:      "2025-09-06",
		Source:          types.SourceAPI,
		IsRemote:        false,
	},
}

var sampleApplications = []Application{
	{
		ID:          "app_7f3c9a12",
		JobID:       "a1b2c3d4-e5f6-7890-abcd-ef1234567890",
		JobTitle:    "Senior Software Engineer",
		Company:     "TechCorp Inc.",
		CoverLetter: "I am very interested in this position.",
		ResumeID:    "resume_1",
		AppliedDate: "2025-09-08",
		Status:      "submitted",
	},
	{
		ID:          "app_2e8d4b56",
		JobID:       "b2c3d4e5-f6a7-8901-bcde-f23456789012",
		JobTitle:    "Data Scientist",
		Company:     "DataFlow Solutions",
		CoverLetter: "My background in machine learning fits this role well.",
		ResumeID:    "resume_1",
		AppliedDate: "2025-09-07",
		Status:      "under_review",
	},
}
