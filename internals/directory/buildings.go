package directory

// Room is one entry in a building's room register.
type Room struct {
	RoomNo     string `json:"roomNo"`
	RoomName   string `json:"roomName"`
	Area       string `json:"area"`
	Department string `json:"department"`
}

// Building is static reference data: campus buildings with their room
// registers. Filtering and search are plain scans over these slices.
type Building struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	FullName    string   `json:"fullName"`
	Description string   `json:"description"`
	Facilities  []string `json:"facilities"`
	Floors      int      `json:"floors"`
	Rooms       []Room   `json:"rooms"`
}

var buildings = []Building{
	{
		ID:          "cdmm",
		Name:        "CDMM",
		FullName:    "Centre for Disaster Mitigation and Management",
		Description: "Houses research labs, faculty cabins, and conference rooms focused on disaster management studies.",
		Facilities:  []string{"Research Labs", "Conference Rooms", "Faculty Cabins", "GIS Lab"},
		Floors:      4,
		Rooms: []Room{
			{RoomNo: "G01", RoomName: "High Resolution Mass Spectrometry Lab", Area: "335 sqft", Department: "SAS"},
			{RoomNo: "G02", RoomName: "Cabin", Area: "160 sqft", Department: "SAS"},
			{RoomNo: "G03", RoomName: "VSM Lab", Area: "303 sqft", Department: "SAS"},
			{RoomNo: "G05", RoomName: "Single crystal XRD Lab", Area: "327 sqft", Department: "SAS"},
			{RoomNo: "G09", RoomName: "Powder X-Ray Diffractometer Facility", Area: "300 sqft", Department: "SAS"},
			{RoomNo: "G10", RoomName: "Electron Microscopy lab", Area: "308 sqft", Department: "CMCT"},
			{RoomNo: "101", RoomName: "Call Office IPR", Area: "322 sqft", Department: "IPR"},
			{RoomNo: "102", RoomName: "Toilet", Area: "52 sqft", Department: "Common"},
			{RoomNo: "103", RoomName: "Class Room", Area: "798 sqft", Department: "SCE"},
			{RoomNo: "104", RoomName: "Class Room", Area: "798 sqft", Department: "SCE"},
			{RoomNo: "105", RoomName: "Class Room", Area: "798 sqft", Department: "SCE"},
			{RoomNo: "201", RoomName: "Ph.d Scholors sitting place", Area: "313 sqft", Department: "CDMM"},
			{RoomNo: "202", RoomName: "CDMM Director cabin", Area: "247 sqft", Department: "CDMM"},
			{RoomNo: "203", RoomName: "Conference Room", Area: "449 sqft", Department: "CDMM"},
			{RoomNo: "205", RoomName: "GIS lab", Area: "916 sqft", Department: "CDMM"},
			{RoomNo: "303", RoomName: "Smart Class Room", Area: "1425 sqft", Department: "CIVIL"},
			{RoomNo: "306", RoomName: "Heat Transfer Lab", Area: "711 sqft", Department: "SMEC"},
		},
	},
	{
		ID:          "gdn",
		Name:        "GDN",
		FullName:    "G.D. Naidu Building",
		Description: "Home to engineering labs, workshops, and classrooms for mechanical and civil engineering departments.",
		Facilities:  []string{"Engineering Labs", "Workshops", "Classrooms", "Research Centers"},
		Floors:      2,
		Rooms: []Room{
			{RoomNo: "G01", RoomName: "Head of the Department", Area: "710 sqft", Department: "SMEC"},
			{RoomNo: "G03", RoomName: "Welding Shop", Area: "1745 sqft", Department: "SMEC"},
			{RoomNo: "G05", RoomName: "Metal Forming Lab", Area: "1666 sqft", Department: "SMEC"},
			{RoomNo: "G07", RoomName: "Class Room", Area: "958 sqft", Department: "SMEC"},
			{RoomNo: "G10", RoomName: "Fluid Machinery Lab", Area: "2971 sqft", Department: "SCE"},
			{RoomNo: "G11", RoomName: "Thermal Engineering Lab", Area: "2201 sqft", Department: "SMEC"},
			{RoomNo: "G16", RoomName: "Machine Shop – I", Area: "4427 sqft", Department: "SMEC"},
			{RoomNo: "105", RoomName: "Dean SMEC", Area: "701 sqft", Department: "SMEC"},
			{RoomNo: "106", RoomName: "Class Room", Area: "796 sqft", Department: "SMEC"},
			{RoomNo: "108", RoomName: "Dean SCE", Area: "793 sqft", Department: "SCE"},
			{RoomNo: "130", RoomName: "CAM Lab", Area: "1598 sqft", Department: "SMEC"},
			{RoomNo: "131", RoomName: "Fluid mechanics lab", Area: "2053 sqft", Department: "SMEC"},
			{RoomNo: "152", RoomName: "Robotics lab", Area: "1975 sqft", Department: "SMEC"},
			{RoomNo: "153", RoomName: "Civil Engineering Computer center", Area: "1944 sqft", Department: "SCE"},
		},
	},
	{
		ID:          "smv",
		Name:        "SMV",
		FullName:    "Sri M.Vishweshwaraiah Building",
		Description: "Houses biotechnology labs, research facilities, and classrooms for life sciences and biotechnology.",
		Facilities:  []string{"Biotechnology Labs", "Research Labs", "Classrooms", "Auditoriums"},
		Floors:      4,
		Rooms: []Room{
			{RoomNo: "G01", RoomName: "Quantitative Biology Lab", Area: "732 sqft", Department: "SBST"},
			{RoomNo: "G04", RoomName: "Staff Room", Area: "239 sqft", Department: "SMBS"},
			{RoomNo: "G05", RoomName: "Department of Chemical Engineering", Area: "358 sqft", Department: "SCHEME"},
			{RoomNo: "G09", RoomName: "B.Tech Engineering Chemistry Lab", Area: "2994 sqft", Department: "SAS"},
			{RoomNo: "G10", RoomName: "Class Room", Area: "674 sqft", Department: "SAS"},
			{RoomNo: "G11", RoomName: "UG students projects", Area: "896 sqft", Department: "SCHEME"},
			{RoomNo: "104", RoomName: "Bio Physics lab", Area: "740 sqft", Department: "SBST"},
			{RoomNo: "109", RoomName: "Class Room", Area: "680 sqft", Department: "SBST"},
			{RoomNo: "201", RoomName: "Fermentation lab", Area: "632 sqft", Department: "SBST"},
			{RoomNo: "204", RoomName: "Plant Biotechnology Lab", Area: "779 sqft", Department: "SBST"},
			{RoomNo: "301", RoomName: "Medical Biotechnology lab", Area: "793 sqft", Department: "SBST"},
			{RoomNo: "304", RoomName: "Conference room", Area: "557 sqft", Department: "SBST"},
		},
	},
}
