package handlers

// Spoken and card text, kept byte-for-byte as published by the live skill
// so regression tests can match exact utterances.
const (
	cardTitleSkill  = "Gasolinas de México"
	cardTitlePrices = "Precios"
	cardTitleHelp   = "Ayuda Gasolinas de México"

	speechWelcomePrefix        = "Gasolinas de México te ayuda a conocer los últimos precios publicados en "
	speechWelcomeSuffix        = ". Prueba a decir: ¿Cuánto cuesta la Magna?, si tienes alguna duda sólo di: Ayuda"
	speechWelcomeBadPostalCode = "Gasolinas de México te ayuda a conocer los últimos precios publicados por las estaciones de servicio en todo México, pero el código postal configurado en tu aplicación de Alexa no parece correcto, verifícalo para así poder ofrecerte información de tu localidad."
	speechWelcomeNoPermissions = "¡Bienvenido! Gasolinas de México, te ayuda a conocer los últimos precios en tu localidad. Habilita los permisos de este Skill con la aplicación de Alexa en tu teléfono celular"

	repromptLaunch = "Prueba a decir: ¿Cuánto cuesta la Magna?, si tienes algna duda sólo di Ayuda"

	speechNoInfoPrefix = "No tenemos información para el código postal "

	speechSaluteSubsequent   = "El precio máximo por litro"
	speechSaluteSinglePrefix = "Existe una estacion de servicio en "
	speechSalutePluralPrefix = "De las "
	speechSalutePluralInfix  = " estaciones de servicio en "
	speechSaluteSuffix       = ", el precio máximo por litro"
	speechSaluteMedian       = " y con un precio promedio de "

	speechAllTypesInfix = " para la gasolina Magna es "
	speechGradeInfix    = " de gasolina "
	speechDieselInfix   = " para el Diésel es "

	speechNoStationsPrefix = "No existen registros de estaciones de servicio para "
	speechNoStationsSuffix = " o no las han reportado."

	speechDieselNotOfferedPrefix = "No parecen ofrecer este combustible las "
	speechDieselNotOfferedInfix  = " de servicio en "

	repromptFirstPrice      = "¿Quieres consultar precios para otro tipo de gasolina?"
	repromptSubsequentPrice = "¿Quieres consultar otro precio?"

	speechHelp     = "Para consultar los precios, simplemente di: ¿Cuánto cuesta la gasolina? ó ¿Cuánto cuesta la Magna?!"
	speechFarewell = "¡Gracias por consultar los precios con Gasolinas de México!"
	speechError    = "Lo siento, no pude comprender el comando. Inténtalo de nuevo"
)
