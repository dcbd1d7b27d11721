package location

import "location-filter-go/pkg/model"

// Philippines is the default table: the administrative regions of the
// Philippines and the cities offered in the location filter.
var Philippines = NewTable(philippineRegions...)

// Order matters, it is the display order of the filter.
var philippineRegions = []model.Region{
	{Name: "Metro Manila (NCR)", Cities: []string{
		"Manila", "Quezon City", "Makati", "Taguig", "Pasig", "Mandaluyong",
		"San Juan", "Caloocan", "Las Piñas", "Parañaque", "Muntinlupa",
		"Marikina", "Valenzuela", "Malabon", "Navotas", "Pasay",
	}},
	{Name: "Ilocos Region (Region I)", Cities: []string{
		"Laoag", "Vigan", "San Fernando", "Alaminos", "Dagupan", "Urdaneta",
	}},
	{Name: "Cagayan Valley (Region II)", Cities: []string{
		"Tuguegarao", "Santiago", "Cauayan", "Ilagan",
	}},
	{Name: "Central Luzon (Region III)", Cities: []string{
		"Angeles", "Olongapo", "San Fernando", "Malolos", "Baliuag", "Cabanatuan",
		"Gapan", "Mabalacat", "Meycauayan", "San Jose del Monte", "Tarlac City",
	}},
	{Name: "CALABARZON (Region IV-A)", Cities: []string{
		"Antipolo", "Bacoor", "Cavite City", "Dasmariñas", "Imus", "Laguna",
		"Los Baños", "Lucena", "San Pablo", "Santa Rosa", "Tagaytay", "Tanauan",
		"Batangas City", "Calamba", "Lipa", "San Pedro",
	}},
	{Name: "MIMAROPA (Region IV-B)", Cities: []string{
		"Calapan", "Puerto Princesa", "Romblon", "Boac",
	}},
	{Name: "Bicol Region (Region V)", Cities: []string{
		"Legazpi", "Naga", "Iriga", "Sorsogon City", "Tabaco", "Ligao",
	}},
	{Name: "Western Visayas (Region VI)", Cities: []string{
		"Iloilo City", "Bacolod", "Roxas", "San Carlos", "Sipalay", "Cadiz",
	}},
	{Name: "Central Visayas (Region VII)", Cities: []string{
		"Cebu City", "Lapu-Lapu", "Mandaue", "Talisay", "Toledo", "Dumaguete",
		"Tagbilaran", "Bogo", "Carcar",
	}},
	{Name: "Eastern Visayas (Region VIII)", Cities: []string{
		"Tacloban", "Ormoc", "Calbayog", "Baybay", "Catbalogan", "Maasin",
	}},
	{Name: "Zamboanga Peninsula (Region IX)", Cities: []string{
		"Zamboanga City", "Dipolog", "Dapitan", "Pagadian", "Isabela",
	}},
	{Name: "Northern Mindanao (Region X)", Cities: []string{
		"Cagayan de Oro", "Iligan", "Oroquieta", "Ozamiz", "Tangub", "Gingoog",
	}},
	{Name: "Davao Region (Region XI)", Cities: []string{
		"Davao City", "Digos", "Mati", "Panabo", "Tagum",
	}},
	{Name: "SOCCSKSARGEN (Region XII)", Cities: []string{
		"General Santos", "Koronadal", "Cotabato City", "Kidapawan", "Tacurong",
	}},
	{Name: "Caraga (Region XIII)", Cities: []string{
		"Butuan", "Surigao City", "Tandag", "Bayugan", "Bislig",
	}},
	{Name: "Cordillera Administrative Region (CAR)", Cities: []string{
		"Baguio", "Tabuk", "La Trinidad", "Bontoc",
	}},
	{Name: "Bangsamoro Autonomous Region (BARMM)", Cities: []string{
		"Marawi", "Cotabato City", "Lamitan",
	}},
}
