package charm

// catalog is the static charm collection. Order and IDs are load-bearing:
// the date-seeded selector indexes into this slice, and persisted daily
// charms reference these IDs, so existing entries must never be reordered
// or renumbered. New charms go at the end.
var catalog = []Record{
	{ID: 1, Text: "Днес ще намериш радост в малките неща.", Icon: IconSun},
	{ID: 2, Text: "Усмивката ти ще озари нечий ден.", Icon: IconHeart},
	{ID: 3, Text: "Добрината, която даваш, ще ти се върне многократно.", Icon: IconFlower},
	{ID: 4, Text: "Вярвай в себе си - ти си по-силен, отколкото мислиш.", Icon: IconStar},
	{ID: 5, Text: "Днес е перфектният ден за нови начинания.", Icon: IconLeaf},
	{ID: 6, Text: "Щастието е в пътя, не в дестинацията.", Icon: IconBird},
	{ID: 7, Text: "Слушай сърцето си - то знае пътя.", Icon: IconHeart},
	{ID: 8, Text: "Всяка трудност носи скрита възможност.", Icon: IconHorseshoe},
	{ID: 9, Text: "Днес ще срещнеш точния човек в точния момент.", Icon: IconClover},
	{ID: 10, Text: "Търпението е ключът към успеха.", Icon: IconCoffee},
	{ID: 11, Text: "Който рано рани, сам си помага.", Icon: IconSun},
	{ID: 12, Text: "Добрата дума отваря железни врати.", Icon: IconHeart},
	{ID: 13, Text: "Капка по капка - вир става.", Icon: IconLeaf},
	{ID: 14, Text: "Където има воля, има и път.", Icon: IconStar},
	{ID: 15, Text: "Очите са прозорец към душата.", Icon: IconMoon},
	{ID: 16, Text: "Истинското богатство е в приятелите.", Icon: IconHeart},
	{ID: 17, Text: "Времето лекува всичко.", Icon: IconFlower},
	{ID: 18, Text: "След буря идва слънце.", Icon: IconSun},
	{ID: 19, Text: "Всяко нещо с труд се постига.", Icon: IconCoffee},
	{ID: 20, Text: "Мъдростта идва с опита.", Icon: IconMoon},
	{ID: 21, Text: "Късметът е на твоя страна днес.", Icon: IconClover},
	{ID: 22, Text: "Звездите са подредени в твоя полза.", Icon: IconStar},
	{ID: 23, Text: "Днес ще получиш изненадваща добра новина.", Icon: IconBird},
	{ID: 24, Text: "Мечтите ти са по-близо, отколкото мислиш.", Icon: IconMoon},
	{ID: 25, Text: "Вселената ти праща знак - бъди внимателен.", Icon: IconStar},
	{ID: 26, Text: "Подковата на късмета е над главата ти.", Icon: IconHorseshoe},
	{ID: 27, Text: "Днес е ден за победи.", Icon: IconSun},
	{ID: 28, Text: "Добрата енергия те следва навсякъде.", Icon: IconFlower},
	{ID: 29, Text: "Съдбата ти усмихва приятни моменти.", Icon: IconClover},
	{ID: 30, Text: "Очаквай нещо хубаво - то идва.", Icon: IconHeart},
	{ID: 31, Text: "Любовта е около теб - отвори очите си.", Icon: IconHeart},
	{ID: 32, Text: "Близък човек мисли за теб в този момент.", Icon: IconMoon},
	{ID: 33, Text: "Искрената връзка заслужава всяко усилие.", Icon: IconFlower},
	{ID: 34, Text: "Прегръдката лекува повече от думите.", Icon: IconHeart},
	{ID: 35, Text: "Днес ще почувстваш топлината на приятелството.", Icon: IconSun},
	{ID: 36, Text: "Любовта започва от любовта към себе си.", Icon: IconHeart},
	{ID: 37, Text: "Добрите хора се привличат един друг.", Icon: IconClover},
	{ID: 38, Text: "Семейството е най-големият дар.", Icon: IconFlower},
	{ID: 39, Text: "Истинската любов не познава граници.", Icon: IconHeart},
	{ID: 40, Text: "Споделената радост е двойна радост.", Icon: IconSun},
	{ID: 41, Text: "Днес е денят за смели решения.", Icon: IconStar},
	{ID: 42, Text: "Трудът ти ще бъде оценен.", Icon: IconHorseshoe},
	{ID: 43, Text: "Нова възможност чука на вратата ти.", Icon: IconBird},
	{ID: 44, Text: "Таланътите ти ще бъдат забелязани.", Icon: IconStar},
	{ID: 45, Text: "Успехът идва при онези, които не се отказват.", Icon: IconSun},
	{ID: 46, Text: "Вярвай в пътя, който си избрал.", Icon: IconLeaf},
	{ID: 47, Text: "Малките стъпки водят до големи постижения.", Icon: IconClover},
	{ID: 48, Text: "Идеите ти заслужават да бъдат чути.", Icon: IconCoffee},
	{ID: 49, Text: "Днес ще намериш решение на трудна задача.", Icon: IconMoon},
	{ID: 50, Text: "Всяка грешка е урок за бъдещето.", Icon: IconLeaf},
	{ID: 51, Text: "Погрижи се за тялото си - то е твоят дом.", Icon: IconFlower},
	{ID: 52, Text: "Един дълбок дъх може да промени всичко.", Icon: IconLeaf},
	{ID: 53, Text: "Спокойствието е в теб - намери го.", Icon: IconMoon},
	{ID: 54, Text: "Природата те зове - излез навън.", Icon: IconBird},
	{ID: 55, Text: "Здравето е най-голямото богатство.", Icon: IconSun},
	{ID: 56, Text: "Добрият сън възстановява силите.", Icon: IconMoon},
	{ID: 57, Text: "Движението е живот.", Icon: IconLeaf},
	{ID: 58, Text: "Балансът е ключът към хармонията.", Icon: IconFlower},
	{ID: 59, Text: "Усмивката е безплатно лекарство.", Icon: IconSun},
	{ID: 60, Text: "Вътрешният мир привлича външния.", Icon: IconHeart},
	{ID: 61, Text: "Днес ще научиш нещо важно.", Icon: IconStar},
	{ID: 62, Text: "Мъдростта идва от слушането.", Icon: IconMoon},
	{ID: 63, Text: "Промяната започва от теб.", Icon: IconLeaf},
	{ID: 64, Text: "Всеки ден е шанс за растеж.", Icon: IconFlower},
	{ID: 65, Text: "Книгите са врата към нови светове.", Icon: IconBird},
	{ID: 66, Text: "Търпението е най-трудната добродетел.", Icon: IconCoffee},
	{ID: 67, Text: "Благодарността привлича още повече блага.", Icon: IconClover},
	{ID: 68, Text: "Миналото учи, бъдещето очаква.", Icon: IconMoon},
	{ID: 69, Text: "Простотата е върховната изтънченост.", Icon: IconLeaf},
	{ID: 70, Text: "Знанието е сила, но мъдростта е мощ.", Icon: IconStar},
	{ID: 71, Text: "Пролетта е в сърцето ти.", Icon: IconFlower},
	{ID: 72, Text: "Слънцето грее еднакво за всички.", Icon: IconSun},
	{ID: 73, Text: "Бъди като водата - намери своя път.", Icon: IconLeaf},
	{ID: 74, Text: "Дори и най-тъмната нощ свършва със зора.", Icon: IconMoon},
	{ID: 75, Text: "Птиците пеят за теб тази сутрин.", Icon: IconBird},
	{ID: 76, Text: "Всяко семе крие огромен потенциал.", Icon: IconLeaf},
	{ID: 77, Text: "Вятърът на промяната носи нови възможности.", Icon: IconBird},
	{ID: 78, Text: "Корените ти са здрави - можеш да растеш.", Icon: IconFlower},
	{ID: 79, Text: "Планините те викат - тръгни.", Icon: IconSun},
	{ID: 80, Text: "Морето носи спокойствие и сила.", Icon: IconLeaf},
	{ID: 81, Text: "Вдъхновението ще те намери днес.", Icon: IconStar},
	{ID: 82, Text: "Творчеството е душата на живота.", Icon: IconFlower},
	{ID: 83, Text: "Музиката говори, когато думите мълчат.", Icon: IconHeart},
	{ID: 84, Text: "Цветовете на живота са в твоите ръце.", Icon: IconSun},
	{ID: 85, Text: "Мечтай голямо - постигай повече.", Icon: IconStar},
	{ID: 86, Text: "Изкуството е огледало на душата.", Icon: IconMoon},
	{ID: 87, Text: "Всяка идея заслужава шанс.", Icon: IconClover},
	{ID: 88, Text: "Фантазията няма граници.", Icon: IconBird},
	{ID: 89, Text: "Танцувай, сякаш никой не те гледа.", Icon: IconHeart},
	{ID: 90, Text: "Пиши историята на живота си с радост.", Icon: IconSun},
	{ID: 91, Text: "Смелостта не е липса на страх, а победа над него.", Icon: IconStar},
	{ID: 92, Text: "Ти си по-храбър, отколкото вярваш.", Icon: IconHorseshoe},
	{ID: 93, Text: "Падането е част от издигането.", Icon: IconSun},
	{ID: 94, Text: "Силата идва от преодоляването.", Icon: IconLeaf},
	{ID: 95, Text: "Бъди лъв в света на овце.", Icon: IconStar},
	{ID: 96, Text: "Страхът е само илюзия.", Icon: IconMoon},
	{ID: 97, Text: "Вярата премества планини.", Icon: IconSun},
	{ID: 98, Text: "Истинската сила е в нежността.", Icon: IconHeart},
	{ID: 99, Text: "Борбата закалява духа.", Icon: IconHorseshoe},
	{ID: 100, Text: "Победителите не се раждат - те се създават.", Icon: IconStar},
	{ID: 101, Text: "Ти заслужаваш всичко хубаво.", Icon: IconHeart},
	{ID: 102, Text: "Днес е твоят ден - грабни го.", Icon: IconSun},
	{ID: 103, Text: "Светлината в теб е по-силна от всяка тъма.", Icon: IconStar},
	{ID: 104, Text: "Ти си уникален и това е твоята сила.", Icon: IconFlower},
	{ID: 105, Text: "Вярвай - чудеса се случват всеки ден.", Icon: IconClover},
	{ID: 106, Text: "Ти си архитект на съдбата си.", Icon: IconMoon},
	{ID: 107, Text: "Всяка секунда е шанс да започнеш отначало.", Icon: IconSun},
	{ID: 108, Text: "Ти си достоен за любов и уважение.", Icon: IconHeart},
	{ID: 109, Text: "Твоят глас има значение.", Icon: IconBird},
	{ID: 110, Text: "Бъдещето е в твоите ръце.", Icon: IconStar},
	{ID: 111, Text: "Усмихни се на непознат - ще ти бъде върнато.", Icon: IconSun},
	{ID: 112, Text: "Малките радости правят живота голям.", Icon: IconCoffee},
	{ID: 113, Text: "Доброто вино се нуждае от време.", Icon: IconMoon},
	{ID: 114, Text: "Истинските приятели са съкровище.", Icon: IconHeart},
	{ID: 115, Text: "Бъди промяната, която искаш да видиш.", Icon: IconLeaf},
	{ID: 116, Text: "Няма провал, има само уроци.", Icon: IconStar},
	{ID: 117, Text: "Тишината носи отговори.", Icon: IconMoon},
	{ID: 118, Text: "Животът е твърде кратък за съжаления.", Icon: IconSun},
	{ID: 119, Text: "Намери красотата във всеки ден.", Icon: IconFlower},
	{ID: 120, Text: "Думите имат сила - използвай ги мъдро.", Icon: IconCoffee},
	{ID: 121, Text: "Днес ще откриеш нещо ново за себе си.", Icon: IconStar},
	{ID: 122, Text: "Вратите се отварят за онези, които чукат.", Icon: IconHorseshoe},
	{ID: 123, Text: "Бъди светлина в нечия тъмнина.", Icon: IconSun},
	{ID: 124, Text: "Магията е навсякъде - трябва само да погледнеш.", Icon: IconClover},
	{ID: 125, Text: "Всеки край е ново начало.", Icon: IconLeaf},
	{ID: 126, Text: "Прости на миналото, прегърни бъдещето.", Icon: IconHeart},
	{ID: 127, Text: "Малките неща имат голямо значение.", Icon: IconFlower},
	{ID: 128, Text: "Доброто се връща при добрите хора.", Icon: IconClover},
	{ID: 129, Text: "Сънувай без граници.", Icon: IconMoon},
	{ID: 130, Text: "Днес е подарък - затова се казва настояще.", Icon: IconSun},
	{ID: 131, Text: "Вярвай в процеса, не само в резултата.", Icon: IconLeaf},
	{ID: 132, Text: "Твоята история още се пише.", Icon: IconStar},
	{ID: 133, Text: "Благодарността е ключ към щастието.", Icon: IconHeart},
	{ID: 134, Text: "Моментът е всичко, което имаш.", Icon: IconCoffee},
	{ID: 135, Text: "Бъди добър към себе си.", Icon: IconFlower},
	{ID: 136, Text: "Успехът е пътуване, не дестинация.", Icon: IconSun},
	{ID: 137, Text: "Вселената има план за теб.", Icon: IconStar},
	{ID: 138, Text: "Обичай без условия.", Icon: IconHeart},
	{ID: 139, Text: "Смехът е най-доброто лекарство.", Icon: IconSun},
	{ID: 140, Text: "Всяко утро носи нови надежди.", Icon: IconBird},
	{ID: 141, Text: "Ти си по-близо до целта, отколкото вчера.", Icon: IconHorseshoe},
	{ID: 142, Text: "Дишай дълбоко и продължавай напред.", Icon: IconLeaf},
	{ID: 143, Text: "Радвай се на пътя, не само на пристигането.", Icon: IconSun},
	{ID: 144, Text: "Всеки човек е учител по някакъв начин.", Icon: IconMoon},
	{ID: 145, Text: "Бъди благодарен за това, което имаш.", Icon: IconHeart},
	{ID: 146, Text: "Новите приключения те очакват.", Icon: IconBird},
	{ID: 147, Text: "Ти можеш повече, отколкото знаеш.", Icon: IconStar},
	{ID: 148, Text: "Късметът обича смелите.", Icon: IconClover},
	{ID: 149, Text: "Всяка буря има край.", Icon: IconSun},
	{ID: 150, Text: "Вътрешната красота свети най-ярко.", Icon: IconFlower},
}

// Catalog returns the full ordered charm catalog. Callers must treat the
// returned slice as read-only.
func Catalog() []Record {
	return catalog
}
