package templates

// Seed content for the four template kinds. Reference data fixed by the
// university's SPMS guidelines; not editable at runtime.
var seedTemplates = []Template{
	{
		Kind: KindTeachingInstructor,
		Sections: []Section{
			{
				ID:     "ti_s1",
				Title:  "Strategic Priority (MFO 1: Higher Education Services)",
				Type:   SectionMFO,
				Weight: 0.60,
				Rows: []Row{
					{ID: "ti_r1", Code: "MFO1-01", Indicator: "Classes conducted/handled according to schedule", Target: "100% of classes conducted", RequiredMOVs: []string{"Daily Time Record (DTR)", "Certificate of Service", "Class Record"}},
					{ID: "ti_r2", Code: "MFO1-02", Indicator: "Students rated Satisfactory or higher", Target: "90% of students", RequiredMOVs: []string{"Grading Sheets (signed by Dean)", "Summary of Grades"}},
					{ID: "ti_r3", Code: "MFO1-03", Indicator: "Instructional Materials developed/produced", Target: "1 IM approved/used", RequiredMOVs: []string{"Copy of IM", "Certificate of Utilization", "Approval Sheet from IM Committee"}},
					{ID: "ti_r4", Code: "MFO1-04", Indicator: "Syllabi prepared/revised", Target: "100% of subjects handled", RequiredMOVs: []string{"Approved Course Syllabi", "Endorsement from Dept Chair"}},
				},
			},
			{
				ID:     "ti_s2",
				Title:  "Core Functions (MFO 3: Research Services)",
				Type:   SectionMFO,
				Weight: 0.20,
				Rows: []Row{
					{ID: "ti_r5", Code: "MFO3-01", Indicator: "Research outputs presented in regional/national conferences", Target: "1 Research Output", RequiredMOVs: []string{"Certificate of Presentation", "Program/Invitation", "Abstract of Paper"}},
					{ID: "ti_r6", Code: "MFO3-02", Indicator: "Research outputs published in refereed journals", Target: "1 Publication (Optional for Inst I)", RequiredMOVs: []string{"Copy of Journal/Article", "Acceptance Letter"}},
				},
			},
			{
				ID:     "ti_s3",
				Title:  "Core Functions (MFO 4: Extension Services)",
				Type:   SectionMFO,
				Weight: 0.10,
				Rows: []Row{
					{ID: "ti_r7", Code: "MFO4-01", Indicator: "Extension activities conducted/implemented", Target: "1 Activity", RequiredMOVs: []string{"Approved Extension Proposal", "Activity Report", "Attendance Sheets", "Photo Documentation"}},
					{ID: "ti_r8", Code: "MFO4-02", Indicator: "Number of persons trained weighted by length of training", Target: "30 Persons", RequiredMOVs: []string{"Attendance Sheets", "Summary of Evaluation"}},
				},
			},
			{
				ID:     "ti_s4",
				Title:  "Support Functions",
				Type:   SectionSupport,
				Weight: 0.10,
				Rows: []Row{
					{ID: "ti_r9", Code: "SUP-01", Indicator: "Attendance to University flag raising ceremonies", Target: "80% Attendance", RequiredMOVs: []string{"Logbook/DTR", "HR Certification"}},
					{ID: "ti_r10", Code: "SUP-02", Indicator: "Attendance to Department/College Meetings", Target: "100% Attendance", RequiredMOVs: []string{"Minutes of Meeting", "Attendance Log"}},
				},
			},
		},
	},
	{
		Kind: KindTeachingAssocProf,
		Sections: []Section{
			{
				ID:     "tap_s1",
				Title:  "Strategic Priority (MFO 1: Higher Education Services)",
				Type:   SectionMFO,
				Weight: 0.50,
				Rows: []Row{
					{ID: "tap_r1", Code: "MFO1-01", Indicator: "Classes conducted/handled", Target: "100% of classes", RequiredMOVs: []string{"DTR", "Class Record"}},
					{ID: "tap_r2", Code: "MFO1-02", Indicator: "Mentorship of graduate/undergraduate students", Target: "5 students advised", RequiredMOVs: []string{"Appointment as Adviser", "Thesis/Dissertation Approval Sheet"}},
				},
			},
			{
				ID:     "tap_s2",
				Title:  "Core Functions (MFO 3: Research Services)",
				Type:   SectionMFO,
				Weight: 0.30,
				Rows: []Row{
					{ID: "tap_r3", Code: "MFO3-01", Indicator: "Research outputs published in international refereed journals", Target: "1 Publication", RequiredMOVs: []string{"Journal Copy", "ISSN/DOI"}},
					{ID: "tap_r4", Code: "MFO3-02", Indicator: "Externally funded research project", Target: "1 Project", RequiredMOVs: []string{"MOA/MOU", "Notice to Proceed", "Project Proposal"}},
				},
			},
			{
				ID:     "tap_s3",
				Title:  "Core Functions (MFO 4: Extension Services)",
				Type:   SectionMFO,
				Weight: 0.10,
				Rows: []Row{
					{ID: "tap_r5", Code: "MFO4-01", Indicator: "Extension program managed/implemented", Target: "1 Program", RequiredMOVs: []string{"Program Report", "Impact Assessment"}},
				},
			},
			{
				ID:     "tap_s4",
				Title:  "Support Functions",
				Type:   SectionSupport,
				Weight: 0.10,
				Rows: []Row{
					{ID: "tap_r6", Code: "SUP-01", Indicator: "Involvement in Accreditation", Target: "Task Force Member", RequiredMOVs: []string{"Office Order", "Certificate of Appearance"}},
				},
			},
		},
	},
	{
		Kind: KindTeachingCOS,
		Sections: []Section{
			{
				ID:     "cos_s1",
				Title:  "Strategic Priority (Higher Education)",
				Type:   SectionMFO,
				Weight: 0.90,
				Rows: []Row{
					{ID: "cos_r1", Code: "MFO1-01", Indicator: "Classes conducted", Target: "100% conducted", RequiredMOVs: []string{"DTR", "Accomplishment Report"}},
					{ID: "cos_r2", Code: "MFO1-02", Indicator: "Grades submitted on time", Target: "72 hours after exams", RequiredMOVs: []string{"Received Copy of Grading Sheets"}},
				},
			},
			{
				ID:     "cos_s2",
				Title:  "Support Functions",
				Type:   SectionSupport,
				Weight: 0.10,
				Rows: []Row{
					{ID: "cos_r3", Code: "SUP-01", Indicator: "Attendance to required meetings", Target: "100% Attendance", RequiredMOVs: []string{"Minutes", "Attendance Sheet"}},
				},
			},
		},
	},
	{
		Kind: KindNonTeaching,
		Sections: []Section{
			{
				ID:     "nt1",
				Title:  "Core Functions",
				Type:   SectionCore,
				Weight: 0.70,
				Rows: []Row{
					{ID: "nt_r1", Code: "CORE-01", Indicator: "Timely processing of incoming communications", Target: "100% within 3 days", RequiredMOVs: []string{"Logbook", "Routing Slip", "Document Tracking System"}},
					{ID: "nt_r2", Code: "CORE-02", Indicator: "Maintenance of office filing system", Target: "0 missing files", RequiredMOVs: []string{"Index of Files", "Photos of Filing Cabinet"}},
					{ID: "nt_r3", Code: "CORE-03", Indicator: "Preparation of periodic reports", Target: "Submitted 1 day before deadline", RequiredMOVs: []string{"Received Copy of Reports", "Email thread"}},
				},
			},
			{
				ID:     "nt2",
				Title:  "Support Functions",
				Type:   SectionSupport,
				Weight: 0.30,
				Rows: []Row{
					{ID: "nt_r4", Code: "SUP-01", Indicator: "Attendance in flag ceremony", Target: "100%", RequiredMOVs: []string{"Biometric Records"}},
					{ID: "nt_r5", Code: "SUP-02", Indicator: "Office cleanliness and sanitation", Target: "Maintained daily", RequiredMOVs: []string{"Inspection Report", "Photos"}},
				},
			},
		},
	},
}
