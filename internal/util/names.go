// Package util provides synthetic identity sources for claim form generation.
package util

import (
	"math/rand/v2"
	"time"
)

// Package-level default RNG to avoid allocations when rng is nil
var defaultRNG = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))

var (
	// MaleFirstNames is the list of male first names
	MaleFirstNames = []string{
		"James", "John", "Robert", "Michael", "William", "David", "Richard", "Joseph",
		"Thomas", "Charles", "Christopher", "Daniel", "Matthew", "Anthony", "Mark",
		"Donald", "Steven", "Paul", "Andrew", "Joshua", "Kenneth", "Kevin", "Brian",
		"George", "Timothy", "Ronald", "Edward", "Jason", "Jeffrey", "Ryan",
		"Jacob", "Gary", "Nicholas", "Eric", "Jonathan", "Stephen", "Larry", "Justin",
		"Scott", "Brandon", "Benjamin", "Samuel", "Raymond", "Gregory", "Frank", "Alexander",
		"Patrick", "Jack", "Dennis", "Jerry", "Tyler", "Aaron", "Jose", "Adam",
		"Nathan", "Henry", "Douglas", "Zachary", "Peter", "Kyle", "Noah", "Ethan",
		"Jeremy", "Walter", "Christian", "Keith", "Roger", "Terry", "Austin", "Sean",
		"Gerald", "Carl", "Dylan", "Harold", "Jordan", "Jesse", "Bryan", "Lawrence",
		"Arthur", "Gabriel", "Bruce", "Albert", "Willie", "Alan", "Wayne", "Billy",
		"Ralph", "Eugene", "Russell", "Bobby", "Mason", "Philip", "Louis", "Harry",
		"Vincent", "Logan", "Luke", "Caleb", "Evan", "Ian", "Connor", "Adrian",
		"Cole", "Dominic", "Elijah", "Gavin", "Isaac", "Jayden", "Landon", "Owen",
	}

	// FemaleFirstNames is the list of female first names
	FemaleFirstNames = []string{
		"Mary", "Patricia", "Jennifer", "Linda", "Barbara", "Elizabeth", "Susan", "Jessica",
		"Sarah", "Karen", "Lisa", "Nancy", "Betty", "Margaret", "Sandra", "Ashley",
		"Kimberly", "Emily", "Donna", "Michelle", "Dorothy", "Carol", "Amanda", "Melissa",
		"Deborah", "Stephanie", "Rebecca", "Sharon", "Laura", "Cynthia", "Kathleen", "Amy",
		"Angela", "Shirley", "Anna", "Brenda", "Pamela", "Emma", "Nicole", "Helen",
		"Samantha", "Katherine", "Christine", "Debra", "Rachel", "Carolyn", "Janet", "Catherine",
		"Maria", "Heather", "Diane", "Ruth", "Julie", "Olivia", "Joyce", "Virginia",
		"Victoria", "Kelly", "Lauren", "Christina", "Joan", "Evelyn", "Judith", "Megan",
		"Andrea", "Cheryl", "Hannah", "Jacqueline", "Martha", "Gloria", "Teresa", "Ann",
		"Sara", "Madison", "Frances", "Kathryn", "Janice", "Jean", "Abigail", "Alice",
		"Julia", "Judy", "Sophia", "Grace", "Denise", "Amber", "Doris", "Marilyn",
		"Danielle", "Beverly", "Isabella", "Theresa", "Diana", "Natalie", "Brittany", "Charlotte",
		"Marie", "Kayla", "Alexis", "Lori", "Chloe", "Ava", "Mia", "Ella",
		"Lily", "Zoe", "Audrey", "Hazel", "Violet", "Aurora", "Savannah", "Brooklyn",
	}

	// LastNames is the list of last names
	LastNames = []string{
		"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
		"Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez", "Wilson", "Anderson", "Thomas",
		"Taylor", "Moore", "Jackson", "Martin", "Lee", "Perez", "Thompson", "White",
		"Harris", "Sanchez", "Clark", "Ramirez", "Lewis", "Robinson", "Walker", "Young",
		"Allen", "King", "Wright", "Scott", "Torres", "Nguyen", "Hill", "Flores",
		"Green", "Adams", "Nelson", "Baker", "Hall", "Rivera", "Campbell", "Mitchell",
		"Carter", "Roberts", "Gomez", "Phillips", "Evans", "Turner", "Diaz", "Parker",
		"Cruz", "Edwards", "Collins", "Reyes", "Stewart", "Morris", "Morales", "Murphy",
		"Cook", "Rogers", "Gutierrez", "Ortiz", "Morgan", "Cooper", "Peterson", "Bailey",
		"Reed", "Kelly", "Howard", "Ramos", "Kim", "Cox", "Ward", "Richardson",
		"Watson", "Brooks", "Chavez", "Wood", "James", "Bennett", "Gray", "Mendoza",
		"Ruiz", "Hughes", "Price", "Alvarez", "Castillo", "Sanders", "Patel", "Myers",
		"Long", "Ross", "Foster", "Jimenez", "Powell", "Jenkins", "Perry", "Russell",
		"Sullivan", "Bell", "Coleman", "Butler", "Henderson", "Barnes", "Gonzales", "Fisher",
		"Vasquez", "Simmons", "Graham", "Mccoy", "Reynolds", "Hamilton", "Griffin", "Wallace",
		"West", "Cole", "Hayes", "Bryant", "Herrera", "Gibson", "Ellis", "Tran",
	}

	// FacilityNames is the list of service facility names for box 32
	FacilityNames = []string{
		"City General Hospital",
		"Regional Medical Center",
		"Outpatient Surgery Center",
		"Diagnostic Imaging Center",
		"Physical Therapy Clinic",
		"Urgent Care Center",
		"Community Health Center",
	}
)

// GeneratePersonName generates a realistic person name based on sex.
//
// Sex should be "M" or "F". Invalid values default to "F".
// If rng is nil, uses shared default RNG.
// Returns "First Last" as printed on an insurance card.
func GeneratePersonName(sex string, rng *rand.Rand) string {
	first, last := GeneratePersonNameParts(sex, rng)
	return first + " " + last
}

// GeneratePersonNameParts returns the first and last name separately so
// callers can keep the parts when a persona needs them individually.
func GeneratePersonNameParts(sex string, rng *rand.Rand) (first, last string) {
	if rng == nil {
		rng = defaultRNG
	}

	if sex == "M" {
		first = MaleFirstNames[rng.IntN(len(MaleFirstNames))]
	} else {
		first = FemaleFirstNames[rng.IntN(len(FemaleFirstNames))]
	}
	last = LastNames[rng.IntN(len(LastNames))]
	return first, last
}

// GeneratePhysicianName generates a provider name in the convention used by
// boxes 17 and 33: "Dr. First Last, MD".
func GeneratePhysicianName(rng *rand.Rand) string {
	if rng == nil {
		rng = defaultRNG
	}

	// Physician sex is irrelevant to the form; draw from both pools
	var first string
	if rng.IntN(2) == 0 {
		first = MaleFirstNames[rng.IntN(len(MaleFirstNames))]
	} else {
		first = FemaleFirstNames[rng.IntN(len(FemaleFirstNames))]
	}
	last := LastNames[rng.IntN(len(LastNames))]

	return "Dr. " + first + " " + last + ", MD"
}

// GenerateFacilityName picks a service facility name for box 32.
func GenerateFacilityName(rng *rand.Rand) string {
	if rng == nil {
		rng = defaultRNG
	}
	return FacilityNames[rng.IntN(len(FacilityNames))]
}
