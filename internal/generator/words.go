package generator

// WordLists are the vocabularies names are sampled from.
type WordLists struct {
	Adjectives []string
	Nouns      []string
	FirstNames []string
	LastNames  []string
}

// DefaultWordLists returns the built-in vocabularies: 225 team names and 500
// member names.
func DefaultWordLists() WordLists {
	return WordLists{
		Adjectives: []string{
			"Super", "Mighty", "Quick", "Silent", "Golden", "Bravo", "Alpha", "Hyper",
			"Sonic", "Mega", "Ultra", "Elite", "Prime", "Cyber", "Shadow",
		},
		Nouns: []string{
			"Wolves", "Dragons", "Ninjas", "Titans", "Eagles", "Sharks", "Falcons", "Knights",
			"Spartans", "Wizards", "Panthers", "Storm", "Phoenix", "Raiders", "Legends",
		},
		FirstNames: []string{
			"Arjun", "Deepika", "Rohan", "Sanjana", "Vikram", "Anjali", "Kartik", "Sneha", "Rahul", "Priya",
			"Ishaan", "Kavya", "Aditya", "Meera", "Siddharth", "Ishani", "Yash", "Tanvi", "Pranav", "Rhea",
			"Abhishek", "Bhavna", "Chetan", "Divya", "Eshwar", "Farah", "Gaurav", "Heena", "Inder", "Jaya",
			"Kunal", "Lata", "Manish", "Neha", "Omkar", "Pooja", "Quasim", "Ritu", "Samer", "Tanya",
			"Umesh", "Varun", "Waqar", "Xavier", "Yuvraj", "Zoya", "Aman", "Binita", "Chirag", "Dolly",
		},
		LastNames: []string{
			"Sharma", "Verma", "Gupta", "Malhotra", "Kapoor", "Singh", "Patel", "Reddy", "Iyer", "Nair",
		},
	}
}

func (w WordLists) empty() bool {
	return len(w.Adjectives) == 0 || len(w.Nouns) == 0 || len(w.FirstNames) == 0 || len(w.LastNames) == 0
}
