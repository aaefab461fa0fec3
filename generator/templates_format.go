package generator

import "strings"

// poemOpenings are the occasion-specific first stanzas.
var poemOpenings = map[string]string{
	OccasionWedding:    "Two paths have met and now are one,\nA journey shared has just begun.",
	OccasionBirthday:   "Another year, another page,\nYou only brighten with your age.",
	OccasionFuneral:    "A quiet light has left the room,\nYet memory blooms beyond the gloom.",
	OccasionGraduation: "The late-night books, the early days,\nHave opened up a hundred ways.",
	OccasionFarewell:   "The road now bends, the time has come,\nTo say goodbye, but not be done.",
	"generic":          "In this moment, words feel small,\nBut from my heart, I give them all.",
}

func composePoem(in templateInput) string {
	opening := poemOpenings[occasionKey(in.Occasion, poemOpenings)]
	dear := "Dear friend"
	if in.Term != "" {
		dear = "My dear " + in.Term
	}
	middle := "Through laughter shared and tears we've cried,\nYou've always been right by my side.\nYour kindness shines like morning light,\nMaking everything feel right."
	if in.funny() {
		middle = "You steal my fries, you hog the sheets,\nYou hum the wrong words to the beats.\nBut if I had to choose again,\nI'd still pick you, my friend."
	}
	return paragraphs(
		"For "+in.Name,
		opening+"\n"+dear+", you mean so much to me,\nA treasure beyond what eyes can see.",
		middle,
		detailSentence(in.Details, ""),
		"So here's my message, simple and true:\nThe world is brighter because of you.\nThank you for being who you are,\nMy guiding light, my shining star. ✨",
	)
}

// prayerIntentions are the occasion-specific petitions.
var prayerIntentions = map[string]string{
	OccasionWedding:    "We lift up this new marriage to You. Bind these two hearts together with patience, faithfulness, and a love that does not fade.",
	OccasionBirthday:   "We thank You for another year of life. Fill this new year with health, purpose, and Your quiet presence in every season.",
	OccasionFuneral:    "We commend our loved one into Your care. Comfort those who grieve and let Your peace rest on every heart in this place.",
	OccasionGraduation: "We thank You for the strength that carried this student to this day. Guide every next step and open the right doors.",
	OccasionFarewell:   "As we part ways, keep us in Your hand. Go before the one who is leaving and bless the road ahead.",
	"generic":          "We bring before You every need spoken and unspoken. Meet us where we are and lead us where we should go.",
}

func composePrayer(in templateInput) string {
	intention := prayerIntentions[occasionKey(in.Occasion, prayerIntentions)]
	return paragraphs(
		"Heavenly Father,",
		"We come before You"+in.here()+" with grateful hearts, thankful for "+in.Name+" and for every blessing You have poured into our lives.",
		intention,
		detailSentence(in.Details, ""),
		"Grant "+in.Name+" wisdom for the journey, courage for the hard days, and joy that does not depend on circumstances. Surround them with people who love them well.",
		pick(in.formal(), "We ask all these things in faith and humility.", "Hold us close, and remind us that we are never alone."),
		"Amen. 🙏",
	)
}

func composeRap(in templateInput) string {
	return paragraphs(
		"Yo, this one goes out to "+in.Name+", listen up,\nRaise your hands high, everybody fill your cup.",
		"Met you on the block, you were shining like gold,\nHeart full of fire and a story to be told.\n"+
			pick(in.funny(),
				"You be dancing off-beat, but you do it with pride,\nEven the DJ had to step outside.",
				"When the days got heavy, you would carry the load,\nYou the light on the corner, you the map on the road."),
		detailSentence(in.Details, ""),
		"So here's to "+in.Name+", yeah, we rock it tonight,\nEverything you touch just turns out right.\nMic drop. 🎤",
	)
}

func composeEmail(in templateInput) string {
	greeting := "Hi " + in.Name + ","
	if in.formal() {
		greeting = "Dear " + in.Name + ","
	}
	body := "I hope this message finds you well. I wanted to take a moment to reach out personally."
	switch in.Occasion {
	case OccasionBirthday:
		body = "I just wanted to wish you a very happy birthday. I hope the day is full of good company and good food."
	case OccasionThankYou:
		body = "I wanted to say thank you. Your help made a real difference, and I don't take it for granted."
	case OccasionApology:
		body = "I owe you an apology. I handled things poorly, and I'm sorry for the trouble it caused."
	case OccasionPromotion:
		body = "Congratulations on your promotion! It is well deserved, and I can't wait to see what you do next."
	case OccasionFarewell:
		body = "As you move on to your next chapter, I wanted to say how much I've enjoyed working with you."
	}
	return paragraphs(
		greeting,
		body,
		detailSentence(in.Details, "Please let me know if there is anything I can do to help."),
		pick(in.formal(), "Kind regards,", "Best,")+"\n[Your name]",
	)
}

func emailSubject(in templateInput) string {
	switch in.Occasion {
	case OccasionBirthday:
		return "Happy Birthday, " + capFirst(in.Name) + "!"
	case OccasionWedding:
		return "Congratulations on your wedding"
	case OccasionThankYou:
		return "Thank you, " + capFirst(in.Name)
	case OccasionApology:
		return "I'm sorry"
	case OccasionFarewell:
		return "Saying goodbye"
	case OccasionPromotion:
		return "Congratulations on your promotion"
	}
	return "A quick note for " + capFirst(in.Name)
}

func composeResignation(in templateInput) string {
	return paragraphs(
		"Dear "+capFirst(in.Name)+",",
		"Please accept this letter as formal notice of my resignation from my position. My last day will be two weeks from today.",
		"I am grateful for the opportunities I have been given during my time here. I have learned a great deal, and I appreciate the support and guidance I have received.",
		detailSentence(in.Details, "I will do everything I can to ensure a smooth transition, including handing over my current work and documenting open tasks."),
		pick(in.funny(),
			"I will miss the team, the coffee machine, and even the printer that only works when nobody is watching.",
			"Thank you again for everything. I wish you and the team continued success."),
		"Sincerely,\n[Your name]",
	)
}

func resignationSubject(templateInput) string { return "Letter of Resignation" }

func composeLoveLetter(in templateInput) string {
	return paragraphs(
		"My dearest "+strings.TrimPrefix(in.Name, "my ")+",",
		"There are a thousand ways to say I love you, and somehow none of them feel like enough.",
		"From the moment you came into my life, everything changed. The ordinary became beautiful, the quiet became comfortable, and every tomorrow became something to look forward to.",
		detailSentence(in.Details, "I love the way you laugh, the way you listen, and the way you make every place feel like home."),
		pick(in.funny(),
			"I even love the way you steal the blanket every single night. Almost.",
			"Whatever the years bring, I want to face them with you, hand in hand."),
		"Forever yours,\n[Your name] 💕",
	)
}

func composeRejection(in templateInput) string {
	return paragraphs(
		"Dear "+capFirst(in.Name)+",",
		"Thank you for the time and effort you put into your application. We genuinely appreciated the chance to learn more about you.",
		"After careful consideration, we have decided not to move forward at this time. This was a difficult decision, and it is not a reflection of your talent or potential.",
		detailSentence(in.Details, ""),
		"We encourage you to apply for future openings, and we wish you every success in your search.",
		pick(in.formal(), "With regards,", "Warm wishes,")+"\n[Your name]",
	)
}

func rejectionSubject(templateInput) string { return "Update on your application" }
