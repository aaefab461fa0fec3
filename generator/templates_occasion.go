package generator

import "fmt"

func composeWedding(in templateInput) string {
	toast := in.Format == FormatToast
	if in.funny() {
		return paragraphs(
			pick(toast, "Ladies and gentlemen, "+in.Name, capFirst(in.Name))+", I have to say, when you told me you were getting married, my first thought was \"Finally! Someone brave enough to put up with you forever!\"",
			pick(toast,
				"I've known "+in.Name+" for years, and let me tell you, they're the kind of person who still gets excited about free samples at the grocery store. But somehow, they found their perfect match.",
				"You've always been special to me, and seeing you find your soulmate fills my heart with joy... and relief that someone else will now have to listen to your terrible jokes!"),
			when(in.longForm(), "I asked around for advice on what to say tonight. Half the room told me to keep it short, and the other half told me to keep it clean. I'm going to do my best with one of those."),
			detailSentence(in.Details, ""),
			pick(toast,
				"To the happy couple: marriage is like a deck of cards. In the beginning, all you need is two hearts and a diamond. By the end, you're looking for a club and a spade! But seriously, you two are perfect for each other.",
				"Marriage is a beautiful journey, and I know you two will navigate it with laughter, love, and probably a lot of eye-rolling."),
			pick(toast,
				"Here's to love, laughter, and happily ever after. Cheers!",
				"Congratulations on finding your forever person. May your marriage be filled with endless laughter and joy!"),
		)
	}

	grown := "I have watched you grow into the incredible person you are today."
	if m := in.mine(); m != "" {
		grown = "You are " + m + ", and " + grown
	}
	return paragraphs(
		pick(toast, "Dear friends and family, thank you all for being here tonight"+in.here()+". ", "")+capFirst(in.Name)+", today marks the beginning of a beautiful new chapter in your life.",
		grown+" Your kindness, strength, and beautiful spirit have touched everyone around you.",
		"Love is not just about finding the right person, but being the right person for someone else. You and your partner have found in each other not just a companion, but a best friend, a confidant, and a soulmate.",
		when(in.longForm(), "I still remember the first time I saw the two of you together. There was an ease between you, a way of finishing each other's sentences and laughing at jokes nobody else understood. In that moment I knew this was something rare, something worth celebrating, and something worth protecting."),
		detailSentence(in.Details, "Marriage will bring days of sunshine and days of storms, but I have no doubt that you will face every one of them side by side, holding on to the promises you make today."),
		when(in.longForm(), "To the newest member of our family: welcome. You are not gaining just a spouse today, you are gaining all of us, with our loud dinners, our long stories, and our endless love."),
		pick(toast, "As we celebrate this union, may", "May")+" your marriage be filled with endless laughter, unwavering support, and a love that grows stronger with each passing day. May you always find your way back to each other.",
		pick(toast,
			"So please, everyone, raise your glasses. Here's to "+in.Name+" and the love of their life, here's to your beautiful future together. Congratulations!",
			"Wishing you both a lifetime of happiness and love. Congratulations on your wedding!"),
	)
}

func composeBirthday(in templateInput) string {
	message := in.Format == FormatMessage
	if in.funny() {
		return paragraphs(
			"Happy birthday to "+in.Name+"! 🎉",
			"Another year older, another year wiser... or so they say! I think you're just another year closer to needing reading glasses and complaining about \"kids these days.\"",
			pick(in.mine() != "", "As "+in.mine()+", you", "You")+" are aging like fine wine... if fine wine got more sarcastic and needed more coffee each year!",
			detailSentence(in.Details, ""),
			"But seriously, "+in.Name+", you bring so much joy and laughter into everyone's life. Your ability to make people smile is truly a gift.",
			pick(message, "Hope your day is as amazing as you are!", "Here's to another year of adventures, laughter, and making unforgettable memories together!"),
			"Happy birthday! 🎂",
		)
	}
	return paragraphs(
		"Happy birthday, "+in.Name+"! 🎉",
		"Today we celebrate not just another year of your life, but another year of the joy, kindness, and light you bring to everyone around you.",
		pick(in.mine() != "", "Having you as "+in.mine()+" ", "Knowing you ")+"has been one of life's greatest blessings. Your compassion, wisdom, and beautiful heart inspire me every day.",
		detailSentence(in.Details, ""),
		"As you step into this new year of life, I hope it brings you everything your heart desires - new adventures, deeper connections, and moments of pure happiness.",
		pick(message, "You deserve all the love and celebration today and always.", "May this birthday be the start of your best year yet, filled with love, laughter, and dreams coming true."),
		"Happy birthday! ✨",
	)
}

func composeFuneral(in templateInput) string {
	name := capFirst(in.Name)
	return paragraphs(
		"Today, we gather"+in.here()+" to honor and remember "+in.Name+", a person who touched our lives in profound ways.",
		pick(in.Term != "", "As the one who called them "+in.Term+", I", "I")+" want to share what made them so special. They had this remarkable ability to make everyone feel valued and loved.",
		name+" lived with kindness, compassion, and grace. They taught us the importance of family, friendship, and living each day with purpose. Their laughter could light up a room, and their wisdom guided us through both joyful and difficult times.",
		detailSentence(in.Details, ""),
		"While we mourn their passing, we also celebrate the beautiful life they lived and the lasting impact they had on all of us. The love they shared, the memories they created, and the lessons they taught us will live on in our hearts forever.",
		pick(in.Tone == ToneReligious,
			"Though they are no longer with us physically, their spirit lives on, and we find comfort knowing they are at peace.",
			"Their legacy of love and kindness will continue to inspire us every day."),
		name+", thank you for the gift of knowing you. You will be deeply missed and forever remembered. 🕊️",
	)
}

func composeGraduation(in templateInput) string {
	return paragraphs(
		"Congratulations, "+in.Name+"! 🎓",
		"Today marks an incredible milestone in your journey, and I couldn't be more proud of you.",
		pick(in.funny(),
			"I'm told the tassel goes on the left after the ceremony. Nobody has ever explained why, and honestly, after all those exams, you've earned the right to wear it wherever you like.",
			"I've watched you work tirelessly toward this moment. Your dedication, perseverance, and hard work have truly paid off."),
		detailSentence(in.Details, ""),
		pick(in.Tone == ToneMotivational,
			"This graduation isn't just an ending - it's a beginning. You're stepping into a world full of possibilities, and I know you're going to achieve amazing things.",
			"Your achievement today is a testament to your character and determination. You should be incredibly proud of yourself."),
		"As you move forward into this next chapter, remember that you have everything it takes to succeed. Your intelligence, creativity, and kind heart will open doors and create opportunities.",
		pick(in.Format == FormatMessage, "So proud of you and excited to see what comes next!", "Here's to your bright future and all the amazing adventures ahead. Congratulations again!"),
		"With pride and love,\n[Your name] ✨",
	)
}

func composeFarewell(in templateInput) string {
	moved := in.Tone == ToneEmotional || in.Tone == ToneHeartfelt
	return paragraphs(
		capFirst(in.Name)+",",
		"As I prepare to say goodbye, I find myself reflecting on all the wonderful moments we've shared together.",
		pick(in.Term != "", "You've been an incredible "+in.Term, "You've been an incredible person in my life")+", and the impact you've had on me will last forever. "+
			pick(moved, "It's hard to put into words how much you mean to me.", "I'm so grateful for the time we've had together."),
		detailSentence(in.Details, ""),
		pick(moved,
			"Though this goodbye is difficult, I carry with me all the lessons you've taught me, the laughter we've shared, and the memories that will always make me smile.",
			"I'll always remember the good times, the lessons learned, and the friendship we've built."),
		pick(in.formal(),
			"I wish you continued success and happiness in all your future endeavors.",
			"I know our paths may be taking us in different directions, but you'll always have a special place in my heart."),
		pick(in.Format == FormatMessage,
			"Thank you for everything. Until we meet again.",
			"Thank you for being such an important part of my journey. This isn't goodbye forever - it's see you later."),
		"With love and best wishes,\n[Your name] 💙",
	)
}

func composeApology(in templateInput) string {
	moved := in.Tone == ToneHeartfelt || in.Tone == ToneEmotional
	return paragraphs(
		capFirst(in.Name)+", I need to talk to you about what happened, and I want to start by saying I'm truly sorry.",
		"I know my actions hurt you, and that's the last thing I ever wanted to do. "+
			pick(in.mine() != "", "You mean so much to me as "+in.mine(), "You mean so much to me")+", and I hate that I've caused you pain.",
		"I've been thinking about this a lot, and I realize I was wrong. "+
			pick(moved, "There's no excuse for what I did, and I take full responsibility for my actions.", "I should have handled things differently."),
		detailSentence(in.Details, ""),
		pick(moved,
			"I value our relationship more than I can express, and I'm committed to making this right. I want to be better - not just for you, but because you deserve the best version of me.",
			"I hope we can work through this together and come out stronger."),
		"I hope you can find it in your heart to forgive me. "+pick(in.Format == FormatMessage, "I miss you.", "I miss you, and I'm here whenever you're ready to talk."),
		"Thank you for being patient with me. 💙",
	)
}

func composeThankYou(in templateInput) string {
	return paragraphs(
		"Dear "+in.Name+",",
		"I wanted to take a moment to express my heartfelt gratitude to you.",
		pick(in.mine() != "", "Having you as "+in.mine()+" ", "Having you in my life ")+"has been such a blessing. Your kindness, support, and generosity have made such a difference in my life.",
		pick(in.formal(),
			"Your assistance and guidance have been invaluable, and I am deeply appreciative of everything you have done.",
			"You have this incredible way of making everything better just by being yourself. Your wisdom, your humor, and your caring heart inspire me every day."),
		detailSentence(in.Details, ""),
		"Thank you for being exactly who you are. Thank you for your friendship, your support, and for all the wonderful memories we've shared together.",
		pick(in.Format == FormatMessage, "I'm so grateful to have you in my life.", "I look forward to many more beautiful moments ahead. You are truly special."),
		"With love and gratitude,\n[Your name] ✨",
	)
}

func composeGeneric(in templateInput) string {
	opener := capFirst(in.Name) + ","
	if in.longForm() {
		opener = fmt.Sprintf("Good evening, everyone%s. I'd like to say a few words about %s.", in.here(), in.Name)
	}
	return paragraphs(
		opener,
		"I wanted to reach out and share something with you that's been on my heart.",
		pick(in.mine() != "", "Having you as "+in.mine()+" ", "Having you in my life ")+"has meant more to me than you might realize. You bring something special to every interaction - whether it's your wisdom, your humor, or simply your presence.",
		detailSentence(in.Details, ""),
		pick(in.funny(),
			"Also, for the record, I still think I was right about that thing we argued about. But I love you anyway.",
			pick(in.Tone == ToneHeartfelt,
				"There are moments in life when we realize how grateful we are for certain people, and this is one of those moments for me.",
				"I hope you know how much you're appreciated and valued.")),
		pick(in.Format == FormatMessage,
			"Just wanted you to know you're thought of and cared about.",
			"Thank you for being exactly who you are. The world is a better place with you in it."),
		pick(in.formal(), "With regards,", "With appreciation,")+"\n[Your name] 💙",
	)
}
